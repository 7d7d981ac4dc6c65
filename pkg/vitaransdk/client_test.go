package vitaransdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/plans"
)

const goodToken = "good-token"

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// newServer fakes the endpoints the client calls. meHandler decides what
// /api/auth/me answers.
func newServer(t *testing.T, meHandler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "rider@example.com" && req.Password == "secret1" {
			writeJSON(w, LoginResponse{Success: true, Token: goodToken})
			return
		}
		writeJSON(w, LoginResponse{Success: false, Message: "Invalid email or password"})
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, StatusResponse{Success: false, Message: "User already exists"})
	})
	mux.HandleFunc("POST /api/subscription/save", func(w http.ResponseWriter, r *http.Request) {
		var req SavePlanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, StatusResponse{Success: req.Token == goodToken})
	})
	mux.HandleFunc("GET /api/subscription/plans", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, PlansResponse{Success: true, Plans: plans.Catalog()})
	})
	mux.HandleFunc("POST /api/payment/create-order", func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Token != goodToken {
			writeJSON(w, PaymentOrderResponse{Status: PaymentStatusError})
			return
		}
		writeJSON(w, PaymentOrderResponse{
			Status: PaymentStatusOK,
			Key:    "rzp_test_key",
			Order:  json.RawMessage(`{"id":"order_1","amount":49900}`),
		})
	})
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HealthResponse{Status: "ok", Uptime: "1s", Version: "test"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, HealthResponse{Status: "degraded"})
	})
	if meHandler != nil {
		mux.HandleFunc("POST /api/auth/me", meHandler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL + "/")
	c.Generator = feed.NewSeeded(7)
	c.ReloadDelay = 10 * time.Millisecond
	return c, srv
}

func meWithPlan(plan *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Token != goodToken {
			writeJSON(w, MeResponse{Success: false})
			return
		}
		writeJSON(w, MeResponse{Success: true, User: &Profile{Name: "Rider", Email: "rider@example.com", Plan: plan}})
	}
}

func ptr(s string) *string { return &s }

func TestAmountUnmarshal(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		`499`:       499,
		`49.5`:      49.5,
		`"499"`:     499,
		`" 12.25 "`: 12.25,
	}
	for raw, want := range cases {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(raw), &a), raw)
		require.InDelta(t, want, float64(a), 1e-9, raw)
	}

	for _, raw := range []string{`"abc"`, `true`, `""`} {
		var a Amount
		require.Error(t, json.Unmarshal([]byte(raw), &a), raw)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t, nil)
	ctx := context.Background()

	token, err := c.Login(ctx, "rider@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, goodToken, token)

	_, err = c.Login(ctx, "rider@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestRegisterSurfacesMessage(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t, nil)

	err := c.Register(context.Background(), RegisterRequest{Name: "a", Email: "a@b.co", Phone: "1234567890", Password: "secret1"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "User already exists", apiErr.Message)
}

func TestSavePlanAndPlans(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t, nil)
	ctx := context.Background()

	require.NoError(t, c.SavePlan(ctx, goodToken, "ALL"))
	require.ErrorIs(t, c.SavePlan(ctx, "bogus", "ALL"), ErrUnauthorized)
	require.ErrorIs(t, c.SavePlan(ctx, "", "ALL"), ErrNoToken)

	list, err := c.Plans(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t, nil)
	ctx := context.Background()

	order, err := c.CreateOrder(ctx, goodToken, 499)
	require.NoError(t, err)
	require.Equal(t, "rzp_test_key", order.Key)
	require.JSONEq(t, `{"id":"order_1","amount":49900}`, string(order.Order))

	_, err = c.CreateOrder(ctx, "bogus", 499)
	require.ErrorIs(t, err, ErrPaymentFailed)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t, nil)
	ctx := context.Background()

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	_, err = c.GetReadiness(ctx)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestLoadDashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		c, _ := newServer(t, meWithPlan(ptr("ALL")))
		res := c.LoadDashboard(ctx, "")
		require.Equal(t, OutcomeNoToken, res.Outcome)
		require.Equal(t, "login.html", res.Outcome.RedirectPage())
	})

	t.Run("rejected token", func(t *testing.T) {
		c, _ := newServer(t, meWithPlan(ptr("ALL")))
		res := c.LoadDashboard(ctx, "bogus")
		require.Equal(t, OutcomeUnauthorized, res.Outcome)
		require.Equal(t, "login.html", res.Outcome.RedirectPage())
	})

	t.Run("no plan", func(t *testing.T) {
		c, _ := newServer(t, meWithPlan(nil))
		res := c.LoadDashboard(ctx, goodToken)
		require.Equal(t, OutcomeNoPlan, res.Outcome)
		require.Equal(t, "subscription.html", res.Outcome.RedirectPage())
		require.NotNil(t, res.Profile)
	})

	t.Run("unknown plan", func(t *testing.T) {
		c, _ := newServer(t, meWithPlan(ptr("GOLD")))
		res := c.LoadDashboard(ctx, goodToken)
		require.Equal(t, OutcomeInvalidPlan, res.Outcome)
		require.ErrorIs(t, res.Err, plans.ErrUnknown)
		require.Empty(t, res.Outcome.RedirectPage())
	})

	t.Run("ready", func(t *testing.T) {
		c, _ := newServer(t, meWithPlan(ptr("ECOM")))
		res := c.LoadDashboard(ctx, goodToken)
		require.Equal(t, OutcomeReady, res.Outcome)
		require.Equal(t, "Rider", res.Profile.Name)
		require.NotNil(t, res.Feed)
		require.Equal(t, plans.Ecom, res.Feed.Plan)
		ecom, _ := plans.Lookup(plans.Ecom)
		for _, o := range res.Feed.Orders {
			require.True(t, ecom.Allows(o.Platform), o.Platform)
		}
	})

	t.Run("server failure", func(t *testing.T) {
		c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, StatusResponse{Success: false})
		})
		res := c.LoadDashboard(ctx, goodToken)
		require.Equal(t, OutcomeNetworkError, res.Outcome)
		require.Error(t, res.Err)
	})

	t.Run("unreachable", func(t *testing.T) {
		c, srv := newServer(t, meWithPlan(ptr("ALL")))
		srv.Close()
		res := c.LoadDashboard(ctx, goodToken)
		require.Equal(t, OutcomeNetworkError, res.Outcome)
	})
}

func TestLoadDashboardWithReload(t *testing.T) {
	t.Parallel()

	t.Run("retries once after a failure", func(t *testing.T) {
		var calls atomic.Int32
		ok := meWithPlan(ptr("QUICK"))
		c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			ok(w, r)
		})

		res := c.LoadDashboardWithReload(context.Background(), goodToken)
		require.Equal(t, OutcomeReady, res.Outcome)
		require.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after the second failure", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		res := c.LoadDashboardWithReload(context.Background(), goodToken)
		require.Equal(t, OutcomeNetworkError, res.Outcome)
		require.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry other outcomes", func(t *testing.T) {
		var calls atomic.Int32
		me := meWithPlan(nil)
		c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			me(w, r)
		})

		res := c.LoadDashboardWithReload(context.Background(), goodToken)
		require.Equal(t, OutcomeNoPlan, res.Outcome)
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("stops waiting when the context ends", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		c.ReloadDelay = time.Hour

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		res := c.LoadDashboardWithReload(ctx, goodToken)
		require.Equal(t, OutcomeNetworkError, res.Outcome)
		require.Equal(t, int32(1), calls.Load())
	})
}
