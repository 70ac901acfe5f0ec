package redditsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client issues bearer-authenticated calls against the resource host.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	// Limiter, when set, is waited on before every upstream call. The upstream allows
	// roughly 100 requests per minute per OAuth client.
	Limiter *rate.Limiter

	Tokens *TokenManager
}

// NewClient creates a client for the resource host that takes its bearer tokens from
// tokens. The user agent is shared with the token manager.
func NewClient(baseURL string, tokens *TokenManager) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		UserAgent: tokens.UserAgent,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		Tokens: tokens,
	}
}

// NewLimiter builds an outbound limiter allowing perMinute requests per minute with a
// small burst. It returns nil when perMinute is not positive.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	burst := max(perMinute/10, 1)
	return rate.NewLimiter(rate.Limit(float64(perMinute)/time.Minute.Seconds()), burst)
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
