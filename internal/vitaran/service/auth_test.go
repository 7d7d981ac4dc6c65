package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vitaran/vitaran/pkg/cryptox"
	"github.com/vitaran/vitaran/pkg/jwtx"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(in *RegisterInput)
		want   error
	}{
		{name: "missing name", modify: func(in *RegisterInput) { in.Name = "   " }, want: ErrMissingFields},
		{name: "missing email", modify: func(in *RegisterInput) { in.Email = "" }, want: ErrMissingFields},
		{name: "missing phone", modify: func(in *RegisterInput) { in.Phone = "" }, want: ErrMissingFields},
		{name: "missing password", modify: func(in *RegisterInput) { in.Password = "" }, want: ErrMissingFields},
		{name: "email without tld", modify: func(in *RegisterInput) { in.Email = "a@b" }, want: ErrInvalidEmail},
		{name: "email with space", modify: func(in *RegisterInput) { in.Email = "a b@c.com" }, want: ErrInvalidEmail},
		{name: "email numeric tld", modify: func(in *RegisterInput) { in.Email = "a@b.c1" }, want: ErrInvalidEmail},
		{name: "phone 9 digits", modify: func(in *RegisterInput) { in.Phone = "987654321" }, want: ErrInvalidPhone},
		{name: "phone 11 digits", modify: func(in *RegisterInput) { in.Phone = "98765432101" }, want: ErrInvalidPhone},
		{name: "phone with letters", modify: func(in *RegisterInput) { in.Phone = "98765abcde" }, want: ErrInvalidPhone},
		{name: "phone with surrounding whitespace", modify: func(in *RegisterInput) { in.Phone = " 9876543210\t" }, want: ErrInvalidPhone},
		{name: "phone only whitespace", modify: func(in *RegisterInput) { in.Phone = "   " }, want: ErrMissingFields},
		{name: "password three emoji", modify: func(in *RegisterInput) { in.Password = "😀😀😀" }, want: ErrPasswordTooShort},
		{name: "password 5 chars", modify: func(in *RegisterInput) { in.Password = "12345" }, want: ErrPasswordTooShort},
		{name: "password over 72 bytes", modify: func(in *RegisterInput) { in.Password = strings.Repeat("p", 73) }, want: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration("valid@example.com")
			tt.modify(&in)

			_, err := env.auth.Register(ctx, in)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// None of the failures may have written anything.
	_, err := env.store.Users().GetUserByEmail(ctx, "valid@example.com")
	require.Error(t, err)
}

func TestRegisterValidationOrder(t *testing.T) {
	env := newTestEnv(t)

	// Bad email and bad phone together: the email is reported first.
	_, err := env.auth.Register(context.Background(), RegisterInput{
		Name: "x", Email: "bad", Phone: "1", Password: "1",
	})
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegisterNormalizesAndStoresBcrypt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegistration("  Asha.Rao@Example.COM ")
	in.Name = "  Asha Rao  "
	u, err := env.auth.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "asha.rao@example.com", u.Email)
	require.Equal(t, "Asha Rao", u.Name)
	require.Nil(t, u.Plan)

	stored, err := env.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, in.Password, stored.PasswordHash)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$10$"))
	cost, err := cryptox.HashCost(stored.PasswordHash)
	require.NoError(t, err)
	require.Equal(t, 10, cost)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, validRegistration("a@x.io"))
	require.NoError(t, err)

	for _, variant := range []string{"a@x.io", "A@X.IO", "  a@x.io  ", "a@X.io"} {
		_, err := env.auth.Register(ctx, validRegistration(variant))
		require.ErrorIs(t, err, ErrEmailTaken, "variant %q", variant)
	}
}

func TestRegisterIssuesNoToken(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.auth.Register(context.Background(), validRegistration("n@x.io"))
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.False(t, u.HasPlan())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, token := env.registerAndLogin(t, "login@x.io")

	claims, err := env.auth.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, testIssuer, claims.Issuer)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	// Email lookup is case-insensitive.
	_, err = env.auth.Login(ctx, " LOGIN@x.io", "secret123")
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerAndLogin(t, "known@x.io")

	_, errUnknown := env.auth.Login(ctx, "unknown@x.io", "secret123")
	_, errWrong := env.auth.Login(ctx, "known@x.io", "not-the-password")
	_, errLong := env.auth.Login(ctx, "known@x.io", strings.Repeat("x", 100))

	require.ErrorIs(t, errUnknown, ErrUserNotFound)
	require.ErrorIs(t, errWrong, ErrWrongPassword)
	require.ErrorIs(t, errLong, ErrWrongPassword)
	for _, err := range []error{errUnknown, errWrong, errLong} {
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), "", "secret123")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = env.auth.Login(context.Background(), "a@x.io", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestWhoAmI(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, token := env.registerAndLogin(t, "me@x.io")

	profile, err := env.auth.WhoAmI(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", profile.Name)
	require.Equal(t, "me@x.io", profile.Email)
	require.Nil(t, profile.Plan)

	require.NoError(t, env.subscription.SavePlan(ctx, token, "ALL"))

	profile, err = env.auth.WhoAmI(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, profile.Plan)
	require.Equal(t, "ALL", profile.Plan.String())
}

func TestWhoAmIRejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u, token := env.registerAndLogin(t, "bad@x.io")

	otherSigner, err := jwtx.NewSignerHS256([]byte("some-other-secret"))
	require.NoError(t, err)
	forged, err := otherSigner.Sign(jwtx.NewSessionClaims(u.ID, time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)

	expired, err := env.auth.Signer.Sign(
		jwtx.NewSessionClaims(u.ID, jwtx.DefaultSessionTTL, testIssuer, time.Now().Add(-8*24*time.Hour)),
	)
	require.NoError(t, err)

	notAULID, err := env.auth.Signer.Sign(jwtx.NewSessionClaims("507f1f77bcf86cd799439011", time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)

	ghost, err := env.auth.Signer.Sign(jwtx.NewSessionClaims("01HZZZZZZZZZZZZZZZZZZZZZZZ", time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	if tampered == token {
		tampered = token[:len(token)-4] + "BBBB"
	}

	for name, tok := range map[string]string{
		"empty":             "",
		"garbage":           "not-a-jwt",
		"tampered":          tampered,
		"wrong secret":      forged,
		"expired":           expired,
		"malformed subject": notAULID,
		"unknown user":      ghost,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.auth.WhoAmI(ctx, tok)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestResetPassword(t *testing.T) {
	env := newTestEnv(t)
	env.auth.ResetRequiresSession = true
	ctx := context.Background()

	_, token := env.registerAndLogin(t, "reset@x.io")

	require.NoError(t, env.auth.ResetPassword(ctx, ResetInput{
		Email: "RESET@x.io", NewPassword: "brand-new", Token: token,
	}))

	_, err := env.auth.Login(ctx, "reset@x.io", "secret123")
	require.ErrorIs(t, err, ErrWrongPassword)
	_, err = env.auth.Login(ctx, "reset@x.io", "brand-new")
	require.NoError(t, err)

	// Tokens issued before the reset keep working until they expire.
	_, err = env.auth.WhoAmI(ctx, token)
	require.NoError(t, err)
}

func TestResetPasswordRequiresOwnSession(t *testing.T) {
	env := newTestEnv(t)
	env.auth.ResetRequiresSession = true
	ctx := context.Background()

	env.registerAndLogin(t, "victim@x.io")
	_, attackerToken := env.registerAndLogin(t, "attacker@x.io")

	err := env.auth.ResetPassword(ctx, ResetInput{Email: "victim@x.io", NewPassword: "pwned!!"})
	require.ErrorIs(t, err, ErrUnauthorized)

	err = env.auth.ResetPassword(ctx, ResetInput{Email: "victim@x.io", NewPassword: "pwned!!", Token: attackerToken})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.auth.Login(ctx, "victim@x.io", "secret123")
	require.NoError(t, err)
}

func TestResetPasswordWithoutSessionGate(t *testing.T) {
	env := newTestEnv(t)
	env.auth.ResetRequiresSession = false
	ctx := context.Background()
	env.registerAndLogin(t, "open@x.io")

	tests := []struct {
		name string
		in   ResetInput
		want error
	}{
		{name: "missing email", in: ResetInput{NewPassword: "abcdef"}, want: ErrMissingFields},
		{name: "missing password", in: ResetInput{Email: "open@x.io"}, want: ErrMissingFields},
		{name: "unknown user", in: ResetInput{Email: "ghost@x.io", NewPassword: "abcdef"}, want: ErrUserNotFound},
		{name: "short password", in: ResetInput{Email: "open@x.io", NewPassword: "12345"}, want: ErrPasswordTooShort},
		{name: "long password", in: ResetInput{Email: "open@x.io", NewPassword: strings.Repeat("z", 73)}, want: ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, env.auth.ResetPassword(ctx, tt.in), tt.want)
		})
	}

	// The short password attempt left the old one in place.
	_, err := env.auth.Login(ctx, "open@x.io", "secret123")
	require.NoError(t, err)

	require.NoError(t, env.auth.ResetPassword(ctx, ResetInput{Email: "open@x.io", NewPassword: "abcdef"}))
	_, err = env.auth.Login(ctx, "open@x.io", "abcdef")
	require.NoError(t, err)
}
