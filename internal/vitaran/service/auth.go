package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vitaran/vitaran/internal/vitaran/domain"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/pkg/cryptox"
	"github.com/vitaran/vitaran/pkg/idx"
	"github.com/vitaran/vitaran/pkg/jwtx"
	"github.com/vitaran/vitaran/pkg/slogx"
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	Issuer   string
	TokenTTL time.Duration

	// ResetRequiresSession gates ResetPassword behind a session token owned
	// by the account being reset.
	ResetRequiresSession bool

	// Now overrides the clock for issued tokens. Nil means time.Now.
	Now func() time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type ResetInput struct {
	Email       string
	NewPassword string
	Token       string
}

// decoyHash is compared against when a login names an unknown email, so both
// failure paths cost one bcrypt comparison.
var decoyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("vitaran-decoy-password")
	return h
})

// Register creates a new account with no plan selected. It does not log the
// user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	// The phone is checked as sent; surrounding whitespace makes it invalid.
	phone := in.Phone

	if name == "" || email == "" || strings.TrimSpace(phone) == "" || in.Password == "" {
		return domain.User{}, ErrMissingFields
	}
	if err := validateEmail(email); err != nil {
		return domain.User{}, err
	}
	if err := validatePhone(phone); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.User{}, err
	}

	// Cheap pre-check so duplicate signups skip the bcrypt cost. The unique
	// index still decides races.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up email", slog.Any("error", err))
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := s.now()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, decoyHash())
			log.Debug("login failed", slog.String("reason", "unknown email"))
			return "", ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", err
	}

	if len(password) > cryptox.MaxPasswordBytes {
		log.Debug("login failed", slog.String("reason", "wrong password"), slog.String("user_id", user.ID))
		return "", ErrWrongPassword
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Debug("login failed", slog.String("reason", "wrong password"), slog.String("user_id", user.ID))
			return "", ErrWrongPassword
		}
		log.Error("stored password hash is unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", err
	}

	token, err := s.issue(user.ID)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return token, nil
}

// WhoAmI returns the profile of the token's owner.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (domain.Profile, error) {
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// Authenticate resolves a session token to its user. Any problem with the
// token or its subject is reported as ErrUnauthorized; the cause is only
// logged.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, ErrUnauthorized
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		log.Debug("session token rejected", slog.Any("error", err))
		return domain.User{}, ErrUnauthorized
	}

	userID, err := idx.Parse(claims.Subject)
	if err != nil {
		log.Debug("session token has malformed subject")
		return domain.User{}, ErrUnauthorized
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("session token for unknown user", slog.String("user_id", userID.String()))
			return domain.User{}, ErrUnauthorized
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}
	return user, nil
}

// ResetPassword replaces the password of the account registered under the
// email. Tokens issued before the reset stay valid until they expire.
func (s *AuthService) ResetPassword(ctx context.Context, in ResetInput) error {
	log := slogx.FromContext(ctx)

	email := NormalizeEmail(in.Email)
	if email == "" || in.NewPassword == "" {
		return ErrMissingFields
	}

	if s.ResetRequiresSession {
		owner, err := s.Authenticate(ctx, in.Token)
		if err != nil {
			return err
		}
		if owner.Email != email {
			log.Warn("password reset for another account refused", slog.String("user_id", owner.ID))
			return ErrUnauthorized
		}
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	if err := validatePassword(in.NewPassword); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(in.NewPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to update password", slog.Any("error", err))
		return err
	}

	log.Info("password reset", slog.String("user_id", user.ID))
	return nil
}

func (s *AuthService) issue(userID string) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return s.Signer.Sign(jwtx.NewSessionClaims(userID, ttl, s.Issuer, s.now()))
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
