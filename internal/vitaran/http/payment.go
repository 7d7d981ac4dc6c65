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

type CreateOrderHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP godoc
//
//	@Summary		Create Payment Order Endpoint
//	@Description	Open a payment order for amount rupees with the configured gateway.
//	@Description	The gateway's order object is returned untouched together with its public key for the browser checkout.
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vitaransdk.CreateOrderRequest	true	"token, amount"
//	@Success		200		{object}	vitaransdk.PaymentOrderResponse	"status ok with key and order, or status error"
//	@Failure		500		{object}	vitaransdk.PaymentOrderResponse	"status error"
//	@Router			/api/payment/create-order [post].
func (h *CreateOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vitaransdk.CreateOrderRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		paymentError(w, http.StatusOK, msgInvalidBody)
		return
	}

	order, err := h.PaymentService.CreateOrder(ctx, req.Token, float64(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrUpstream):
			paymentError(w, http.StatusOK, "")
		case errors.Is(err, service.ErrInvalidAmount):
			paymentError(w, http.StatusOK, msgInvalidAmount)
		default:
			log.Error("failed to create payment order", slog.Any("error", err))
			paymentError(w, http.StatusInternalServerError, "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vitaransdk.PaymentOrderResponse{
		Status: vitaransdk.PaymentStatusOK,
		Key:    order.Key,
		Order:  order.Order,
	})
}

func paymentError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, vitaransdk.PaymentOrderResponse{
		Status:  vitaransdk.PaymentStatusError,
		Message: message,
	})
}
