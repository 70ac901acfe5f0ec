package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/frontpage/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusBadRequest, "bad sub")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"bad sub"}`, rec.Body.String())
}

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		ID  string `json:"id"`
		Dir int    `json:"dir"`
	}

	t.Run("decodes and ignores unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"abc","dir":1,"extra":true}`))
		var b body
		require.NoError(t, httpx.DecodeJSONBody(req, &b))
		require.Equal(t, body{ID: "abc", Dir: 1}, b)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var b body
		require.ErrorContains(t, httpx.DecodeJSONBody(req, &b), "empty")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":`))
		var b body
		require.ErrorContains(t, httpx.DecodeJSONBody(req, &b), "invalid JSON")
	})

	t.Run("trailing data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"a"} {"id":"b"}`))
		var b body
		require.ErrorContains(t, httpx.DecodeJSONBody(req, &b), "trailing")
	})
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("empty key disables the gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireAPIKey("")(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	gated := httpx.RequireAPIKey("s3cret")(okHandler)

	t.Run("header key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(httpx.APIKeyHeader, "s3cret")
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me?key=s3cret", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing or wrong key", func(t *testing.T) {
		for _, target := range []string{"/api/me", "/api/me?key=nope"} {
			rec := httptest.NewRecorder()
			gated.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusUnauthorized, rec.Code, target)
			require.JSONEq(t, `{"error":"missing or invalid api key"}`, rec.Body.String())
		}
	})
}
