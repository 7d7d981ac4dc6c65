package vitaransdk

import (
	"context"

	"github.com/vitaran/vitaran/pkg/plans"
)

// SavePlan stores the plan choice for the token owner.
func (c *Client) SavePlan(ctx context.Context, token, plan string) error {
	if token == "" {
		return ErrNoToken
	}
	var resp StatusResponse
	if err := c.postJSON(ctx, "/api/subscription/save", SavePlanRequest{Token: token, Plan: plan}, &resp); err != nil {
		return err
	}
	return statusErr(resp)
}

// Plans lists the plans the server offers.
func (c *Client) Plans(ctx context.Context) ([]plans.Plan, error) {
	var resp PlansResponse
	if err := c.getJSON(ctx, "/api/subscription/plans", &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// Feed asks the server to render a dashboard feed for the token owner.
func (c *Client) Feed(ctx context.Context, token string) (*FeedResponse, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	var resp FeedResponse
	if err := c.postJSON(ctx, "/api/dashboard/feed", TokenRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, statusErr(StatusResponse{Message: resp.Message})
	}
	return &resp, nil
}
