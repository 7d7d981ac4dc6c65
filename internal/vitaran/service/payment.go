package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/vitaran/vitaran/internal/vitaran/domain"
	"github.com/vitaran/vitaran/internal/vitaran/payment"
	"github.com/vitaran/vitaran/pkg/slogx"
)

// DefaultCurrency is used when PaymentService.Currency is empty.
const DefaultCurrency = "INR"

// maxMinorUnits keeps amount*100 exactly representable as a float64.
const maxMinorUnits = 1 << 53

type PaymentService struct {
	Auth     *AuthService
	Gateway  payment.Gateway
	Currency string

	// Now overrides the clock used for receipts. Nil means time.Now.
	Now func() time.Time
}

// CreateOrder opens a gateway order for amount (in major units, e.g. rupees)
// and returns it together with the gateway's public key. The gateway's order
// object is passed through untouched.
func (s *PaymentService) CreateOrder(ctx context.Context, token string, amount float64) (domain.PaymentOrder, error) {
	user, err := s.Auth.Authenticate(ctx, token)
	if err != nil {
		return domain.PaymentOrder{}, err
	}
	log := slogx.FromContext(slogx.WithUserID(ctx, user.ID))

	minor, err := toMinorUnits(amount)
	if err != nil {
		return domain.PaymentOrder{}, err
	}

	req := domain.OrderRequest{
		Amount:   minor,
		Currency: s.currency(),
		Receipt:  "vitaran_" + strconv.FormatInt(s.now().UnixMilli(), 10),
	}

	order, err := s.Gateway.CreateOrder(ctx, req)
	if err != nil {
		log.Error("payment order failed",
			slog.String("gateway", s.Gateway.Name()),
			slog.String("receipt", req.Receipt),
			slog.Any("error", err),
		)
		return domain.PaymentOrder{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	log.Info("payment order created",
		slog.String("gateway", s.Gateway.Name()),
		slog.String("receipt", req.Receipt),
		slog.Int64("amount", req.Amount),
	)
	return domain.PaymentOrder{Key: s.Gateway.KeyID(), Order: order}, nil
}

// toMinorUnits converts a major-unit amount to the gateway's integer minor
// units, rounding half away from zero.
func toMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	minor := math.Round(amount * 100)
	if minor < 1 || minor > maxMinorUnits {
		return 0, ErrInvalidAmount
	}
	return int64(minor), nil
}

func (s *PaymentService) currency() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
