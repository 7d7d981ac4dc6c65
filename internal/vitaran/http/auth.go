package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vitaran/vitaran/internal/vitaran/service"
	"github.com/vitaran/vitaran/pkg/httpx"
	"github.com/vitaran/vitaran/pkg/slogx"
	"github.com/vitaran/vitaran/pkg/vitaransdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create an account. The new user has no plan and is not logged in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.RegisterRequest	true	"name, email, phone, password"
//	@Success		200		{object}	vitaransdk.StatusResponse	"success, message on failure"
//	@Failure		500		{object}	vitaransdk.StatusResponse	"success=false"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, msgInvalidBody)
		return
	}

	_, err := h.AuthService.Register(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(w, msgAllFields)
		case errors.Is(err, service.ErrInvalidEmail):
			fail(w, msgInvalidEmail)
		case errors.Is(err, service.ErrInvalidPhone):
			fail(w, msgInvalidPhone)
		case errors.Is(err, service.ErrPasswordTooShort):
			fail(w, msgPasswordTooShort)
		case errors.Is(err, service.ErrPasswordTooLong):
			fail(w, msgPasswordTooLong)
		case errors.Is(err, service.ErrEmailTaken):
			fail(w, msgUserExists)
		default:
			log.Error("failed to register user", slog.Any("error", err))
			internalError(w)
		}
		return
	}

	ok(w)
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a session token.
//	@Description	Unknown emails and wrong passwords get the same answer.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.LoginRequest		true	"email, password"
//	@Success		200		{object}	vitaransdk.LoginResponse	"success, token or message"
//	@Failure		500		{object}	vitaransdk.StatusResponse	"success=false"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, msgInvalidBody)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(w, msgMissingFields)
		case errors.Is(err, service.ErrInvalidCredentials):
			fail(w, msgBadCredentials)
		default:
			log.Error("failed to log in", slog.Any("error", err))
			internalError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vitaransdk.LoginResponse{Success: true, Token: token})
}

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Resolve a session token to the owner's name, email and plan (null until chosen).
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.TokenRequest		true	"token"
//	@Success		200		{object}	vitaransdk.MeResponse		"success, user"
//	@Failure		500		{object}	vitaransdk.StatusResponse	"success=false"
//	@Router			/api/auth/me [post].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.TokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, "")
		return
	}

	profile, err := h.AuthService.WhoAmI(ctx, req.Token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			fail(w, "")
			return
		}
		log.Error("failed to resolve session", slog.Any("error", err))
		internalError(w)
		return
	}

	user := &vitaransdk.Profile{Name: profile.Name, Email: profile.Email}
	if profile.Plan != nil {
		plan := profile.Plan.String()
		user.Plan = &plan
	}
	httpx.WriteJSON(w, http.StatusOK, vitaransdk.MeResponse{Success: true, User: user})
}

type ResetPasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Set a new password for the account under email.
//	@Description	Unless the server disables it, the caller must also send a session token owned by that account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.ResetPasswordRequest	true	"email, newPassword, token"
//	@Success		200		{object}	vitaransdk.StatusResponse		"success, message on failure"
//	@Failure		500		{object}	vitaransdk.StatusResponse		"success=false"
//	@Router			/api/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, msgInvalidBody)
		return
	}

	err := h.AuthService.ResetPassword(ctx, service.ResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
		Token:       req.Token,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			fail(w, msgAllFields)
		case errors.Is(err, service.ErrUnauthorized):
			fail(w, msgLoginRequired)
		case errors.Is(err, service.ErrUserNotFound):
			fail(w, msgUserNotFound)
		case errors.Is(err, service.ErrPasswordTooShort):
			fail(w, msgPasswordTooShort)
		case errors.Is(err, service.ErrPasswordTooLong):
			fail(w, msgPasswordTooLong)
		default:
			log.Error("failed to reset password", slog.Any("error", err))
			internalError(w)
		}
		return
	}

	ok(w)
}
