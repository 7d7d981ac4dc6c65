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

type SavePlanHandler struct {
	SubscriptionService *service.SubscriptionService
}

// ServeHTTP godoc
//
//	@Summary		Save Plan Endpoint
//	@Description	Set the token owner's plan to ECOM, QUICK or ALL, replacing any earlier choice.
//	@Tags			Subscription
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.SavePlanRequest	true	"token, plan"
//	@Success		200		{object}	vitaransdk.StatusResponse	"success, message on an unknown plan"
//	@Failure		500		{object}	vitaransdk.StatusResponse	"success=false"
//	@Router			/api/subscription/save [post].
func (h *SavePlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.SavePlanRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, msgInvalidBody)
		return
	}

	if err := h.SubscriptionService.SavePlan(ctx, req.Token, req.Plan); err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			fail(w, "")
		case errors.Is(err, service.ErrUnknownPlan):
			fail(w, msgInvalidPlan)
		default:
			log.Error("failed to save plan", slog.Any("error", err))
			internalError(w)
		}
		return
	}

	ok(w)
}

type PlansHandler struct {
	SubscriptionService *service.SubscriptionService
}

// ServeHTTP godoc
//
//	@Summary		Plan Catalog Endpoint
//	@Description	List the plans with the platforms each unlocks and its profit ceiling.
//	@Tags			Subscription
//	@Produce		json
//	@Success		200	{object}	vitaransdk.PlansResponse	"success, plans"
//	@Router			/api/subscription/plans [get].
func (h *PlansHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, vitaransdk.PlansResponse{
		Success: true,
		Plans:   h.SubscriptionService.Plans(r.Context()),
	})
}
