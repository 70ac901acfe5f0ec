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

	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// Get issues an authenticated GET and decodes the JSON response into out.
// A non-2xx response is returned as *UpstreamError.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	resp, err := c.doAuthRequest(ctx, http.MethodGet, target, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(ctx, resp, out)
}

// PostForm issues an authenticated form-encoded POST and decodes the JSON response
// into out. out may be nil when the caller does not need the body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	resp, err := c.doAuthRequest(
		ctx,
		http.MethodPost,
		path,
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return err
	}
	return decodeJSON(ctx, resp, out)
}

// doAuthRequest performs an HTTP request using a bearer token from the TokenManager.
func (c *Client) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("upstream rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON reads the body once, turns non-2xx responses into *UpstreamError and
// otherwise decodes into target.
func decodeJSON(ctx context.Context, resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slogx.FromContext(ctx).Warn("upstream call failed",
			slog.String("url", resp.Request.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if target == nil || len(bodyBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
