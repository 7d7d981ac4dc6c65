package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitaran/vitaran/internal/vitaran/domain"
	"github.com/vitaran/vitaran/internal/vitaran/store/drivers/sqlite"
	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/jwtx"
)

const (
	testSecret = "service-test-secret-0123456789abcdef"
	testIssuer = "vitaran-test"
)

type testEnv struct {
	store        *sqlite.Store
	auth         *AuthService
	subscription *SubscriptionService
	dashboard    *DashboardService
	payment      *PaymentService
	gateway      *fakeGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)

	auth := &AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256([]byte(testSecret), testIssuer),
		Issuer:   testIssuer,
		TokenTTL: jwtx.DefaultSessionTTL,
	}
	gw := &fakeGateway{order: json.RawMessage(`{"id":"order_test","amount":0}`)}

	return &testEnv{
		store:        st,
		auth:         auth,
		subscription: &SubscriptionService{Store: st, Auth: auth},
		dashboard:    &DashboardService{Auth: auth, Generator: feed.NewSeeded(3)},
		payment:      &PaymentService{Auth: auth, Gateway: gw},
		gateway:      gw,
	}
}

func validRegistration(email string) RegisterInput {
	return RegisterInput{
		Name:     "Asha Rao",
		Email:    email,
		Phone:    "9876543210",
		Password: "secret123",
	}
}

// registerAndLogin creates an account and returns a session token for it.
func (e *testEnv) registerAndLogin(t *testing.T, email string) (domain.User, string) {
	t.Helper()
	ctx := context.Background()

	in := validRegistration(email)
	u, err := e.auth.Register(ctx, in)
	require.NoError(t, err)

	token, err := e.auth.Login(ctx, email, in.Password)
	require.NoError(t, err)
	return u, token
}

type fakeGateway struct {
	mu    sync.Mutex
	reqs  []domain.OrderRequest
	order json.RawMessage
	err   error
}

func (g *fakeGateway) Name() string  { return "fake" }
func (g *fakeGateway) KeyID() string { return "rzp_test_fake" }

func (g *fakeGateway) CreateOrder(_ context.Context, req domain.OrderRequest) (json.RawMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.order, nil
}

func (g *fakeGateway) requests() []domain.OrderRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.OrderRequest(nil), g.reqs...)
}
