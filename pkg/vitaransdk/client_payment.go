package vitaransdk

import (
	"context"
	"net/http"
)

// CreateOrder opens a payment order for amount rupees.
func (c *Client) CreateOrder(ctx context.Context, token string, amount float64) (*PaymentOrderResponse, error) {
	var resp PaymentOrderResponse
	req := CreateOrderRequest{Token: token, Amount: Amount(amount)}
	if err := c.postJSON(ctx, "/api/payment/create-order", req, &resp); err != nil {
		return nil, err
	}
	if resp.Status != PaymentStatusOK {
		if resp.Message != "" {
			return nil, &APIError{StatusCode: http.StatusOK, Message: resp.Message}
		}
		return nil, ErrPaymentFailed
	}
	return &resp, nil
}
