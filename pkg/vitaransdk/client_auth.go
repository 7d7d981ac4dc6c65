package vitaransdk

import (
	"context"
	"net/http"
)

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	var resp StatusResponse
	if err := c.postJSON(ctx, "/api/auth/register", req, &resp); err != nil {
		return err
	}
	return statusErr(resp)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &APIError{StatusCode: http.StatusOK, Message: resp.Message}
	}
	return resp.Token, nil
}

// Me returns the profile of the token owner.
func (c *Client) Me(ctx context.Context, token string) (*Profile, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var resp MeResponse
	if err := c.postJSON(ctx, "/api/auth/me", TokenRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, ErrUnauthorized
	}
	return resp.User, nil
}

// ResetPassword sets a new password for the account under req.Email.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	var resp StatusResponse
	if err := c.postJSON(ctx, "/api/auth/reset-password", req, &resp); err != nil {
		return err
	}
	return statusErr(resp)
}

func statusErr(resp StatusResponse) error {
	if resp.Success {
		return nil
	}
	if resp.Message == "" {
		return ErrUnauthorized
	}
	return &APIError{StatusCode: http.StatusOK, Message: resp.Message}
}
