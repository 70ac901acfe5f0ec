package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/domain"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// VoteRequest casts or clears a vote. Kind is an optional hint for raw ids.
type VoteRequest struct {
	ID   string
	Dir  domain.Vote
	Kind domain.Kind
}

// CommentRequest replies to a post or comment. Kind is an optional hint for raw ids.
type CommentRequest struct {
	Parent string
	Text   string
	Kind   domain.Kind
}

// MutationService submits votes and comments.
type MutationService struct {
	Upstream Upstream
}

// Vote submits req.Dir for the coerced fullname of req.ID.
func (s *MutationService) Vote(ctx context.Context, req VoteRequest) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return invalid("id", "id is required")
	}
	if req.Dir < domain.VoteDown || req.Dir > domain.VoteUp {
		return invalid("dir", "%s", domain.ErrInvalidVoteDirection)
	}

	fullname := domain.ToFullname(id, domain.TargetVote, req.Kind)
	err := s.Upstream.PostForm(ctx, "/api/vote", url.Values{
		"id":  {fullname},
		"dir": {req.Dir.FormValue()},
	}, nil)
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("vote submitted", "thing_id", fullname, "dir", int(req.Dir))
	return nil
}

// Comment posts req.Text as a reply and returns the raw upstream response.
func (s *MutationService) Comment(ctx context.Context, req CommentRequest) (json.RawMessage, error) {
	parent := strings.TrimSpace(req.Parent)
	if parent == "" {
		return nil, invalid("parent", "parent is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, invalid("text", "text is required")
	}

	fullname := domain.ToFullname(parent, domain.TargetReply, req.Kind)

	var out json.RawMessage
	err := s.Upstream.PostForm(ctx, "/api/comment", url.Values{
		"api_type": {"json"},
		"thing_id": {fullname},
		"text":     {req.Text},
	}, &out)
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("comment submitted", "thing_id", fullname)
	return out, nil
}
