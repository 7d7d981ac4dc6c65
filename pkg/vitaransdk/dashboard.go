package vitaransdk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/plans"
)

// Outcome tells a dashboard front end what to do after loading.
type Outcome int

const (
	// OutcomeReady means Profile and Feed are set and can be rendered.
	OutcomeReady Outcome = iota
	// OutcomeNoToken means there is no session; go to the login page.
	OutcomeNoToken
	// OutcomeUnauthorized means the session was rejected; go to the login page.
	OutcomeUnauthorized
	// OutcomeNoPlan means the user has not subscribed; go to plan selection.
	OutcomeNoPlan
	// OutcomeInvalidPlan means the stored plan is not one this client knows.
	OutcomeInvalidPlan
	// OutcomeNetworkError means the server could not be reached or failed.
	OutcomeNetworkError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReady:
		return "ready"
	case OutcomeNoToken:
		return "no_token"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeNoPlan:
		return "no_plan"
	case OutcomeInvalidPlan:
		return "invalid_plan"
	case OutcomeNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// RedirectPage is the page a browser front end navigates to for o, or "" when
// it should stay on the dashboard.
func (o Outcome) RedirectPage() string {
	switch o {
	case OutcomeNoToken, OutcomeUnauthorized:
		return "login.html"
	case OutcomeNoPlan:
		return "subscription.html"
	default:
		return ""
	}
}

type DashboardResult struct {
	Outcome Outcome
	Profile *Profile
	Feed    *feed.Feed

	// Err is the underlying failure for OutcomeNetworkError and
	// OutcomeInvalidPlan.
	Err error
}

var fallbackGenerator = sync.OnceValue(func() *feed.Generator {
	return feed.NewGenerator(nil)
})

func (c *Client) generator() *feed.Generator {
	if c.Generator != nil {
		return c.Generator
	}
	return fallbackGenerator()
}

// LoadDashboard fetches the profile for token and renders a feed for its plan
// locally. Only the profile lookup touches the network.
func (c *Client) LoadDashboard(ctx context.Context, token string) DashboardResult {
	if token == "" {
		return DashboardResult{Outcome: OutcomeNoToken}
	}

	profile, err := c.Me(ctx, token)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return DashboardResult{Outcome: OutcomeUnauthorized}
	case err != nil:
		return DashboardResult{Outcome: OutcomeNetworkError, Err: err}
	}

	if profile.Plan == nil || *profile.Plan == "" {
		return DashboardResult{Outcome: OutcomeNoPlan, Profile: profile}
	}

	id, err := plans.Parse(*profile.Plan)
	if err != nil {
		return DashboardResult{Outcome: OutcomeInvalidPlan, Profile: profile, Err: err}
	}
	f, err := c.generator().Generate(id)
	if err != nil {
		return DashboardResult{Outcome: OutcomeInvalidPlan, Profile: profile, Err: err}
	}

	return DashboardResult{Outcome: OutcomeReady, Profile: profile, Feed: &f}
}

// LoadDashboardWithReload is LoadDashboard with one delayed retry after a
// network error, the way the browser dashboard reloads itself. It gives up
// early if ctx ends while waiting.
func (c *Client) LoadDashboardWithReload(ctx context.Context, token string) DashboardResult {
	res := c.LoadDashboard(ctx, token)
	if res.Outcome != OutcomeNetworkError {
		return res
	}

	delay := c.ReloadDelay
	if delay <= 0 {
		delay = DefaultReloadDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return res
	case <-timer.C:
	}

	return c.LoadDashboard(ctx, token)
}
