package vitaransdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/plans"
)

// ============================================================================
// Requests
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest carries a session token in the body, which is how every
// token-gated endpoint receives it.
type TokenRequest struct {
	Token string `json:"token"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`

	// Token is the caller's session. Required unless the server runs with
	// AUTH_RESET_REQUIRES_SESSION=false.
	Token string `json:"token,omitempty"`
}

type SavePlanRequest struct {
	Token string `json:"token"`
	Plan  string `json:"plan"`
}

type CreateOrderRequest struct {
	Token  string `json:"token"`
	Amount Amount `json:"amount"`
}

// Amount is a price in major currency units (rupees). It decodes from a JSON
// number or a numeric string, since browser forms tend to send the latter.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(f)
	return nil
}

// ============================================================================
// Responses
// ============================================================================

// StatusResponse is the envelope shared by every endpoint under /api/auth and
// /api/subscription. Message is only set on failures that have something to
// tell the user.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Profile is what the server reveals about the token owner. Plan is nil until
// the user picks one.
type Profile struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Plan  *string `json:"plan"`
}

type MeResponse struct {
	Success bool     `json:"success"`
	User    *Profile `json:"user,omitempty"`
}

type PlansResponse struct {
	Success bool         `json:"success"`
	Plans   []plans.Plan `json:"plans"`
}

type FeedResponse struct {
	Success bool       `json:"success"`
	Plan    string     `json:"plan,omitempty"`
	Feed    *feed.Feed `json:"feed,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Payment statuses.
const (
	PaymentStatusOK    = "ok"
	PaymentStatusError = "error"
)

// PaymentOrderResponse carries the gateway's order object verbatim in Order.
type PaymentOrderResponse struct {
	Status  string          `json:"status"`
	Key     string          `json:"key,omitempty"`
	Order   json.RawMessage `json:"order,omitempty" swaggertype:"object"`
	Message string          `json:"message,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
	Payment  string `json:"payment"`
}
