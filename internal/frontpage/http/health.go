package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/frontpage/pkg/httpx"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
)

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the upstream credential state.
type HealthChecks struct {
	Credentials string `json:"credentials"`
	Grant       string `json:"grant"`
	Token       string `json:"token"` // "cached" or "cold"
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Reports whether the configured credentials are complete for the selected grant and whether an access token is cached.
//	@Description	No upstream call is made.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"credentials incomplete"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, tokens *redditsdk.TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds := tokens.Credentials()
		checks := &HealthChecks{
			Credentials: "ok",
			Grant:       creds.Grant(),
			Token:       "cold",
		}
		status, code := "ok", http.StatusOK

		if err := creds.Validate(); err != nil {
			checks.Credentials = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if _, ok := tokens.Cached(); ok {
			checks.Token = "cached"
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
