package service

import (
	"context"
	"log/slog"

	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/slogx"
)

type DashboardService struct {
	Auth      *AuthService
	Generator *feed.Generator
}

// Feed renders a fresh simulated feed for the token owner's plan.
func (s *DashboardService) Feed(ctx context.Context, token string) (feed.Feed, error) {
	user, err := s.Auth.Authenticate(ctx, token)
	if err != nil {
		return feed.Feed{}, err
	}
	if !user.HasPlan() {
		return feed.Feed{}, ErrNoPlan
	}

	f, err := s.Generator.Generate(*user.Plan)
	if err != nil {
		slogx.FromContext(ctx).Error("stored plan cannot be rendered",
			slog.String("user_id", user.ID),
			slog.String("plan", user.Plan.String()),
			slog.Any("error", err),
		)
		return feed.Feed{}, err
	}
	return f, nil
}
