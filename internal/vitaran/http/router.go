package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/vitaran/vitaran/internal/vitaran/payment"
	"github.com/vitaran/vitaran/internal/vitaran/service"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/pkg/httpx"
	"github.com/vitaran/vitaran/pkg/jwtx"
	"github.com/vitaran/vitaran/pkg/slogx"
	"github.com/vitaran/vitaran/pkg/vitaransdk"

	_ "github.com/vitaran/vitaran/api/vitaran" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	gateway      payment.Gateway
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	static       fs.FS

	store               store.Store
	AuthService         *service.AuthService
	SubscriptionService *service.SubscriptionService
	DashboardService    *service.DashboardService
	PaymentService      *service.PaymentService
}

// NewRouter creates a router. static holds the browser pages and may be nil,
// in which case no static files are served.
func NewRouter(
	signer jwtx.Signer,
	gateway payment.Gateway,
	buildVersion string,
	st store.Store,
	static fs.FS,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		gateway:      gateway,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		static:       static,
		logger:       logger,
	}

	// Logging runs outermost so recovered panics still get a request line.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(vitaransdk.StatusResponse{Success: false}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSubscription()
	r.registerDashboard()
	r.registerPayment()
	r.registerSystem()
	r.registerStatic()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Vitaran API
//	@version		0.1.0
//	@description	Backend for the Vitaran rider app: accounts, plan subscriptions, payment orders and the simulated delivery feed.
//	@description
//	@description	Session tokens are HS256 JWTs returned by login. Token-gated endpoints read the token from the JSON body.
//
//	@contact.name	Vitaran Team
//	@contact.url	https://github.com/vitaran/vitaran
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/auth/register", &RegisterHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/login", &LoginHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/me", &MeHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/reset-password", &ResetPasswordHandler{AuthService: r.AuthService})
}

func (r *Router) registerSubscription() {
	r.Mux.Handle("POST /api/subscription/save", &SavePlanHandler{SubscriptionService: r.SubscriptionService})
	r.Mux.Handle("GET /api/subscription/plans", &PlansHandler{SubscriptionService: r.SubscriptionService})
}

func (r *Router) registerDashboard() {
	r.Mux.Handle("POST /api/dashboard/feed", &FeedHandler{DashboardService: r.DashboardService})
}

func (r *Router) registerPayment() {
	r.Mux.Handle("POST /api/payment/create-order", &CreateOrderHandler{PaymentService: r.PaymentService})
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer, r.gateway))
}

func (r *Router) registerStatic() {
	if r.static == nil {
		return
	}
	r.Mux.Handle("GET /", StaticHandler(r.static))
}
