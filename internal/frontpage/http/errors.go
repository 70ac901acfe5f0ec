package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/httpx"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// writeServiceError maps service and upstream errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var (
		validationErr *service.ValidationError
		configErr     *redditsdk.ConfigurationError
		authErr       *redditsdk.AuthError
		upstreamErr   *redditsdk.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		httpx.WriteError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &configErr):
		log.Error("upstream credentials incomplete", "missing", configErr.Missing, "grant", configErr.Grant)
		httpx.WriteError(w, http.StatusInternalServerError, configErr.Error())
	case errors.As(err, &authErr):
		httpx.WriteError(w, authErr.Status(), authErr.Error())
	case errors.As(err, &upstreamErr):
		httpx.WriteError(w, upstreamErr.Status(), upstreamErr.Error())
	default:
		log.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
