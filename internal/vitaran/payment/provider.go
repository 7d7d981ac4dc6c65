// Package payment is the seam between the order bridge and a payment
// gateway. Gateways hand back the provider's order object verbatim so the
// browser checkout can consume it without us modelling every field.
package payment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vitaran/vitaran/internal/vitaran/domain"
)

var (
	// ErrNotConfigured is returned by Disabled for every call.
	ErrNotConfigured = errors.New("payment: gateway not configured")

	// ErrRejected means the gateway answered but refused the request.
	ErrRejected = errors.New("payment: order rejected by gateway")

	// ErrUnavailable covers transport failures, 5xx answers and an open breaker.
	ErrUnavailable = errors.New("payment: gateway unavailable")
)

// Gateway creates payment orders with an external provider.
type Gateway interface {
	// Name identifies the provider in logs.
	Name() string

	// KeyID is the public key the browser checkout needs alongside the order.
	KeyID() string

	// CreateOrder registers an order and returns the provider's JSON order object.
	CreateOrder(ctx context.Context, req domain.OrderRequest) (json.RawMessage, error)
}

// Disabled is the Gateway used when no credentials are configured. Every
// order attempt fails, which surfaces to clients as a plain payment error.
type Disabled struct{}

func (Disabled) Name() string  { return "disabled" }
func (Disabled) KeyID() string { return "" }

func (Disabled) CreateOrder(context.Context, domain.OrderRequest) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}
