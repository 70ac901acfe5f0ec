package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/domain"
	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/httpx"
)

// VoteRequest is the body of POST /api/vote.
type VoteRequest struct {
	ID   string          `json:"id" example:"abc123"`
	Dir  json.RawMessage `json:"dir" swaggertype:"integer" enums:"-1,0,1"`
	Kind string          `json:"kind,omitempty" enums:"post,comment"`
}

// CommentRequest is the body of POST /api/comment.
type CommentRequest struct {
	Parent string `json:"parent" example:"t3_abc123"`
	Text   string `json:"text"`
	Kind   string `json:"kind,omitempty" enums:"post,comment"`
}

// OKResponse acknowledges a mutation.
type OKResponse struct {
	OK bool `json:"ok"`
}

// CommentResponse carries the raw upstream reply to a comment submission.
type CommentResponse struct {
	OK     bool            `json:"ok"`
	Reddit json.RawMessage `json:"reddit" swaggertype:"object"`
}

// parseKind accepts an empty kind; anything else must name a post or comment.
func parseKind(raw string) (domain.Kind, bool) {
	if strings.TrimSpace(raw) == "" {
		return domain.KindUnknown, true
	}
	k := domain.ParseKind(raw)
	return k, k != domain.KindUnknown
}

type VoteHandler struct {
	MutationService *service.MutationService
}

// ServeHTTP casts or clears a vote.
//
//	@Summary		Vote
//	@Description	Votes on a post or comment. Raw ids are assumed to be posts unless kind says otherwise.
//	@Tags			Mutations
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		VoteRequest	true	"Target and direction"
//	@Success		200		{object}	OKResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed body, missing id or bad direction"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid API key"
//	@Failure		403		{object}	httpx.ErrorResponse	"Rejected upstream"
//	@Router			/api/vote [post].
func (h *VoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body VoteRequest
	if err := httpx.DecodeJSONBody(r, &body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	dir, err := domain.ParseVoteDirection(body.Dir)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	kind, ok := parseKind(body.Kind)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "kind must be post or comment")
		return
	}

	err = h.MutationService.Vote(r.Context(), service.VoteRequest{ID: body.ID, Dir: dir, Kind: kind})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, OKResponse{OK: true})
}

type CommentHandler struct {
	MutationService *service.MutationService
}

// ServeHTTP submits a reply.
//
//	@Summary		Comment
//	@Description	Replies to a post or comment. Raw parent ids of up to six characters are assumed to be comments, longer ones posts, unless kind says otherwise.
//	@Tags			Mutations
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CommentRequest	true	"Parent and text"
//	@Success		200		{object}	CommentResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed body, missing parent or text"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid API key"
//	@Failure		403		{object}	httpx.ErrorResponse	"Rejected upstream"
//	@Router			/api/comment [post].
func (h *CommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body CommentRequest
	if err := httpx.DecodeJSONBody(r, &body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	kind, ok := parseKind(body.Kind)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "kind must be post or comment")
		return
	}

	raw, err := h.MutationService.Comment(r.Context(), service.CommentRequest{
		Parent: body.Parent,
		Text:   body.Text,
		Kind:   kind,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	httpx.WriteJSON(w, http.StatusOK, CommentResponse{OK: true, Reddit: raw})
}
