package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/frontpage/pkg/cryptox"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// APIKeyHeader carries the shared API key. The "key" query parameter is accepted as a
// fallback for clients that cannot set headers.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey rejects requests that do not present the configured key.
// An empty key disables the gate.
func RequireAPIKey(key string) Middleware {
	if strings.TrimSpace(key) == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	// Keep only the fingerprint around.
	fingerprint := cryptox.FingerprintToken(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if presented == "" {
				presented = strings.TrimSpace(r.URL.Query().Get("key"))
			}

			if !cryptox.MatchesFingerprint(presented, fingerprint) {
				slogx.FromContext(r.Context()).Warn("api key rejected", "present", presented != "")
				WriteError(w, http.StatusUnauthorized, "missing or invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
