package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/frontpage/pkg/idx"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, slogx.ParseLevel(in), in)
	}
}

func TestFromContextDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Same(t, slog.Default(), slogx.FromContext(req.Context()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var inner *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))

	t.Run("generates and echoes a request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

		reqID := rec.Header().Get(slogx.RequestIDHeader)
		require.Len(t, reqID, 26)
		require.NotSame(t, base, inner)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "http_request", line["msg"])
		require.Equal(t, "ERROR", line["level"])
		require.Equal(t, reqID, line["req_id"])
		require.Equal(t, "/api/feed", line["path"])
		require.EqualValues(t, http.StatusBadGateway, line["status"])
		require.EqualValues(t, len("upstream down"), line["bytes"])
	})

	t.Run("keeps a valid inbound request id", func(t *testing.T) {
		buf.Reset()
		inbound := idx.NewRequestID().String()
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set(slogx.RequestIDHeader, inbound)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, inbound, rec.Header().Get(slogx.RequestIDHeader))
		require.Contains(t, buf.String(), `"req_id":"`+inbound+`"`)
	})

	t.Run("replaces a malformed inbound request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set(slogx.RequestIDHeader, "trace-1-forged")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		reqID := rec.Header().Get(slogx.RequestIDHeader)
		require.Len(t, reqID, 26)
		require.NotContains(t, buf.String(), "forged")
	})
}
