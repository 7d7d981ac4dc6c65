package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/pkg/plans"
	"github.com/vitaran/vitaran/pkg/slogx"
)

type SubscriptionService struct {
	Store store.Store
	Auth  *AuthService
}

// SavePlan sets the plan of the token's owner, replacing any previous choice.
func (s *SubscriptionService) SavePlan(ctx context.Context, token, planName string) error {
	user, err := s.Auth.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	log := slogx.FromContext(slogx.WithUserID(ctx, user.ID))

	plan, err := plans.Parse(planName)
	if err != nil {
		log.Debug("unknown plan requested", slog.String("plan", planName))
		return ErrUnknownPlan
	}

	if err := s.Store.Users().UpdatePlan(ctx, user.ID, plan); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		log.Error("failed to save plan", slog.Any("error", err))
		return err
	}

	log.Info("plan saved", slog.String("plan", plan.String()))
	return nil
}

// Plans lists the catalog offered on the plan selection page.
func (s *SubscriptionService) Plans(context.Context) []plans.Plan {
	return plans.Catalog()
}
