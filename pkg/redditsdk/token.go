package redditsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// SafetyMargin is how much validity a cached token must have left to be reused.
const SafetyMargin = 60 * time.Second

// Grant type names as sent to the token endpoint.
const (
	GrantRefreshToken = "refresh_token"
	GrantPassword     = "password"
)

// Credential field names, reported by ConfigurationError. They match the environment
// variables the service reads them from.
const (
	FieldClientID     = "REDDIT_CLIENT_ID"
	FieldClientSecret = "REDDIT_CLIENT_SECRET"
	FieldRefreshToken = "REDDIT_REFRESH_TOKEN"
	FieldUsername     = "REDDIT_USERNAME"
	FieldPassword     = "REDDIT_PASSWORD"
)

// Credentials are the static secrets used to obtain access tokens.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Username     string
	Password     string
}

// Grant reports which grant these credentials select. A refresh token always wins.
func (c Credentials) Grant() string {
	if strings.TrimSpace(c.RefreshToken) != "" {
		return GrantRefreshToken
	}
	return GrantPassword
}

// Validate checks that every field the selected grant needs is present and returns a
// single ConfigurationError naming all of the missing ones.
func (c Credentials) Validate() error {
	grant := c.Grant()

	type field struct {
		name  string
		value string
	}

	required := []field{{FieldClientID, c.ClientID}}
	switch grant {
	case GrantRefreshToken:
		required = append(required, field{FieldRefreshToken, c.RefreshToken})
	default:
		required = append(required,
			field{FieldClientSecret, c.ClientSecret},
			field{FieldUsername, c.Username},
			field{FieldPassword, c.Password},
		)
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ConfigurationError{Grant: grant, Missing: missing}
	}
	return nil
}

// form builds the grant-specific form body.
func (c Credentials) form() url.Values {
	if c.Grant() == GrantRefreshToken {
		return url.Values{
			"grant_type":    {GrantRefreshToken},
			"refresh_token": {c.RefreshToken},
		}
	}
	return url.Values{
		"grant_type": {GrantPassword},
		"username":   {c.Username},
		"password":   {c.Password},
	}
}

// AccessToken is a bearer token and the absolute time it stops being valid.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// usableAt reports whether the token still has more than SafetyMargin left at now.
func (t *AccessToken) usableAt(now time.Time) bool {
	return t != nil && t.Value != "" && t.ExpiresAt.Sub(now) > SafetyMargin
}

// tokenCache holds the one live token of the process. It is empty at cold start and
// replaced wholesale on refresh; the stored token is never mutated in place.
type tokenCache struct {
	mu    sync.Mutex
	token *AccessToken
}

func (c *tokenCache) load() *AccessToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *tokenCache) store(t *AccessToken) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
}

// tokenResponse is the subset of the token endpoint response we use.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error,omitempty"`
}

// TokenManager hides both grants behind AccessToken and caches the result.
//
// The cache lock is only held to read or replace the cached pointer, never across the
// network exchange, so concurrent callers with a stale cache each perform their own
// exchange and each overwrite the cache.
type TokenManager struct {
	AuthBaseURL string
	UserAgent   string
	HTTPClient  *http.Client

	// Now is the clock used for expiry decisions. Defaults to time.Now.
	Now func() time.Time

	creds Credentials
	cache tokenCache
}

// NewTokenManager creates a manager for the given credentials and token host.
func NewTokenManager(creds Credentials, authBaseURL, userAgent string) *TokenManager {
	return &TokenManager{
		AuthBaseURL: strings.TrimSuffix(authBaseURL, "/"),
		UserAgent:   userAgent,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Now:   time.Now,
		creds: creds,
	}
}

// Credentials returns the credentials the manager was built with.
func (m *TokenManager) Credentials() Credentials {
	return m.creds
}

// Cached returns a copy of the cached token, if any. It never triggers an exchange.
func (m *TokenManager) Cached() (AccessToken, bool) {
	t := m.cache.load()
	if t == nil {
		return AccessToken{}, false
	}
	return *t, true
}

// AccessToken returns a bearer token, reusing the cached one while it has more than
// SafetyMargin left and performing exactly one grant exchange otherwise.
func (m *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if err := m.creds.Validate(); err != nil {
		return "", err
	}

	if cached := m.cache.load(); cached.usableAt(m.now()) {
		return cached.Value, nil
	}

	token, err := m.exchange(ctx)
	if err != nil {
		return "", err
	}

	m.cache.store(token)
	return token.Value, nil
}

func (m *TokenManager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m *TokenManager) exchange(ctx context.Context) (*AccessToken, error) {
	log := slogx.FromContext(ctx)
	grant := m.creds.Grant()

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.AuthBaseURL+"/api/v1/access_token",
		strings.NewReader(m.creds.form().Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(m.creds.ClientID, m.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if m.UserAgent != "" {
		req.Header.Set("User-Agent", m.UserAgent)
	}

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("token grant rejected", slog.String("grant", grant), slog.Int("status", resp.StatusCode))
		return nil, &AuthError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(bodyBytes, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The token endpoint reports some rejections (e.g. invalid_grant) with a 200.
	if tokenResp.AccessToken == "" {
		log.Warn("token grant returned no access token", slog.String("grant", grant), slog.String("error", tokenResp.Error))
		return nil, &AuthError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	expiresAt := m.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	log.Info("access token acquired", slog.String("grant", grant), slog.Time("expires_at", expiresAt))

	return &AccessToken{Value: tokenResp.AccessToken, ExpiresAt: expiresAt}, nil
}
