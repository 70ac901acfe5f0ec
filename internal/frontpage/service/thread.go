package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/domain"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// Thread query defaults and bounds.
const (
	DefaultThreadSort  = "confidence"
	DefaultThreadLimit = 200
	MaxThreadLimit     = 500
)

var threadSorts = map[string]bool{
	"confidence":    true,
	"top":           true,
	"new":           true,
	"controversial": true,
	"old":           true,
	"qa":            true,
}

var postIDRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ErrMissingPost is returned when a thread response does not start with a post.
var ErrMissingPost = errors.New("thread listing has no post")

// ThreadQuery is a normalized comments request.
type ThreadQuery struct {
	PostID string // without the t3_ prefix
	Sort   string
	Limit  int
}

// ParseThreadQuery validates the post id and normalizes sort and limit.
func ParseThreadQuery(q url.Values) (ThreadQuery, error) {
	id := strings.TrimPrefix(strings.TrimSpace(q.Get("id")), domain.KindPost.Prefix())
	if id == "" {
		return ThreadQuery{}, invalid("id", "id is required")
	}
	if !postIDRe.MatchString(id) {
		return ThreadQuery{}, invalid("id", "invalid post id %q", id)
	}

	sort := strings.ToLower(strings.TrimSpace(q.Get("sort")))
	if !threadSorts[sort] {
		sort = DefaultThreadSort
	}

	return ThreadQuery{
		PostID: id,
		Sort:   sort,
		Limit:  intParam(q, "limit", DefaultThreadLimit, 1, MaxThreadLimit),
	}, nil
}

// ThreadService fetches a post with its comment tree.
type ThreadService struct {
	Upstream Upstream

	// Now defaults to time.Now.
	Now func() time.Time
}

// Thread fetches and flattens the thread for q.
func (s *ThreadService) Thread(ctx context.Context, q ThreadQuery) (domain.Thread, error) {
	var raw redditsdk.ThreadListing
	err := s.Upstream.Get(ctx, "/comments/"+q.PostID+".json", url.Values{
		"sort":  {q.Sort},
		"limit": {strconv.Itoa(q.Limit)},
	}, &raw)
	if err != nil {
		return domain.Thread{}, err
	}

	thread, err := Flatten(raw, nowOr(s.Now))
	if err != nil {
		return domain.Thread{}, err
	}

	slogx.FromContext(ctx).Debug("thread built",
		"post_id", q.PostID,
		"comments", len(thread.Comments),
	)
	return thread, nil
}

// frame is a pending comment node and its depth.
type frame struct {
	thing redditsdk.Thing
	depth int
}

// Flatten turns the two-listing thread response into the post and its comments in
// pre-order. Nodes that are not comments, such as "more" placeholders, are skipped
// without affecting depth or their siblings.
func Flatten(raw redditsdk.ThreadListing, now time.Time) (domain.Thread, error) {
	if len(raw) == 0 {
		return domain.Thread{}, ErrMissingPost
	}

	var (
		post  redditsdk.PostData
		found bool
	)
	for _, child := range raw[0].Data.Children {
		if child.Kind != redditsdk.KindLink {
			continue
		}
		p, err := child.Post()
		if err != nil {
			return domain.Thread{}, err
		}
		post, found = p, true
		break
	}
	if !found {
		return domain.Thread{}, ErrMissingPost
	}

	thread := domain.Thread{
		Post:     NormalizePost(post, now),
		Comments: []domain.Comment{},
	}
	if len(raw) < 2 {
		return thread, nil
	}

	top := raw[1].Data.Children
	stack := make([]frame, 0, len(top))
	for i := len(top) - 1; i >= 0; i-- {
		stack = append(stack, frame{thing: top[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.thing.Kind != redditsdk.KindComment {
			continue
		}
		c, err := f.thing.Comment()
		if err != nil {
			return domain.Thread{}, fmt.Errorf("comment at depth %d: %w", f.depth, err)
		}

		thread.Comments = append(thread.Comments, normalizeComment(c, f.depth))

		// Reverse push keeps document order on pop.
		replies := c.Replies.Children()
		for i := len(replies) - 1; i >= 0; i-- {
			stack = append(stack, frame{thing: replies[i], depth: f.depth + 1})
		}
	}

	return thread, nil
}

func normalizeComment(c redditsdk.CommentData, depth int) domain.Comment {
	name := c.Name
	if name == "" && c.ID != "" {
		name = domain.KindComment.Prefix() + c.ID
	}
	return domain.Comment{
		ID:         c.ID,
		Name:       name,
		Author:     c.Author,
		Body:       c.Body,
		Score:      c.Score,
		Ups:        c.Ups,
		Vote:       domain.VoteFromLikes(c.Likes),
		CreatedUTC: c.CreatedUTC,
		Depth:      depth,
	}
}
