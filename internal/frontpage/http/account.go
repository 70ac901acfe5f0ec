package http

import (
	"net/http"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/httpx"
)

// SubscriptionsResponse lists subscribed subreddit names.
type SubscriptionsResponse struct {
	Subreddits []string `json:"subreddits"`
}

type AccountHandler struct {
	AccountService *service.AccountService
}

// HandleMe passes the upstream account object through.
//
//	@Summary		Current account
//	@Tags			Account
//	@Security		APIKeyAuth
//	@Produce		json
//	@Success		200	{object}	object	"Upstream account object, unchanged"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	raw, err := h.AccountService.Me(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// HandleSubscriptions lists the account's subreddits.
//
//	@Summary		Subscribed subreddits
//	@Description	Crawls up to ten pages of subscriptions and returns the names sorted case-insensitively.
//	@Tags			Account
//	@Security		APIKeyAuth
//	@Produce		json
//	@Success		200	{object}	SubscriptionsResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/mysubs [get].
func (h *AccountHandler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	names, err := h.AccountService.Subscriptions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SubscriptionsResponse{Subreddits: names})
}
