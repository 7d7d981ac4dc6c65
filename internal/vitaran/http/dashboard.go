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

type FeedHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard Feed Endpoint
//	@Description	Render a fresh simulated order feed for the token owner's plan. Nothing is stored.
//	@Tags			Dashboard
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.TokenRequest		true	"token"
//	@Success		200		{object}	vitaransdk.FeedResponse		"success, plan, feed"
//	@Failure		500		{object}	vitaransdk.StatusResponse	"success=false"
//	@Router			/api/dashboard/feed [post].
func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.TokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, "")
		return
	}

	f, err := h.DashboardService.Feed(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			fail(w, "")
		case errors.Is(err, service.ErrNoPlan):
			fail(w, msgNoPlan)
		default:
			log.Error("failed to render feed", slog.Any("error", err))
			internalError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vitaransdk.FeedResponse{
		Success: true,
		Plan:    f.Plan.String(),
		Feed:    &f,
	})
}
