package http

import (
	"net/http"
	"time"

	"github.com/vitaran/vitaran/internal/vitaran/payment"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/pkg/httpx"
	"github.com/vitaran/vitaran/pkg/jwtx"
	"github.com/vitaran/vitaran/pkg/vitaransdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	The database and token signer must be healthy. A payment gateway without credentials is reported but does not fail the probe.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vitaransdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	vitaransdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer jwtx.Signer,
	gateway payment.Gateway,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &vitaransdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
			Payment:  "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if signer == nil {
			checks.Signer = "error: no signer configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else if err := signer.Validate(); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if gateway == nil || gateway.KeyID() == "" {
			checks.Payment = "disabled"
		}

		httpx.WriteJSON(w, statusCode, vitaransdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
