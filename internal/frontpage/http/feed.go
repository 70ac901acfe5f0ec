package http

import (
	"net/http"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/httpx"
)

type FeedHandler struct {
	FeedService *service.FeedService
}

// ServeHTTP returns the filtered and re-ranked feed.
//
//	@Summary		Get feed
//	@Description	Fetches the front page or a subreddit listing, drops adult, low-score and excluded-domain items, ranks and orders the rest.
//	@Tags			Feed
//	@Security		APIKeyAuth
//	@Produce		json
//	@Param			sub		query		string	false	"best, home, a subreddit or a+b multi"	default(best)
//	@Param			limit	query		int		false	"Listing size, clamped to 10..100"		default(50)
//	@Param			min		query		int		false	"Minimum score, clamped to 0..10000"	default(0)
//	@Param			exclude	query		string	false	"Domain substrings separated by comma, plus or space"
//	@Param			nsfw	query		bool	false	"Include adult content"	default(false)
//	@Param			sort	query		string	false	"rank, new or top"		default(rank)
//	@Param			t		query		string	false	"Top window: hour, day, week, month, year, all"	default(day)
//	@Success		200		{array}		domain.FeedItem
//	@Failure		400		{object}	httpx.ErrorResponse	"Invalid subreddit"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid API key"
//	@Failure		429		{object}	httpx.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	httpx.ErrorResponse	"Missing credentials or internal error"
//	@Router			/api/feed [get].
func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := service.ParseFeedQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.FeedService.Feed(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}

type CommentsHandler struct {
	ThreadService *service.ThreadService
}

// ServeHTTP returns a post and its comments flattened in reading order.
//
//	@Summary		Get comments
//	@Description	Returns the post and its comment tree in pre-order, each comment annotated with its depth.
//	@Tags			Feed
//	@Security		APIKeyAuth
//	@Produce		json
//	@Param			id		query		string	true	"Post id, with or without t3_"
//	@Param			sort	query		string	false	"confidence, top, new, controversial, old, qa"	default(confidence)
//	@Param			limit	query		int		false	"Comment limit, clamped to 1..500"				default(200)
//	@Success		200		{object}	domain.Thread
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing or invalid id"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid API key"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown post (upstream status)"
//	@Failure		500		{object}	httpx.ErrorResponse	"Missing credentials or internal error"
//	@Router			/api/comments [get].
func (h *CommentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := service.ParseThreadQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	thread, err := h.ThreadService.Thread(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, thread)
}
