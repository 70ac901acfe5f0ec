package redditsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ============================================================================
// Thing kinds
// ============================================================================

// Kind tags used by the upstream on every "thing" it returns.
const (
	KindComment   = "t1"
	KindAccount   = "t2"
	KindLink      = "t3"
	KindSubreddit = "t5"
	KindMore      = "more"
	KindListing   = "Listing"
)

// ============================================================================
// Listing envelope
// ============================================================================

// Thing is a kind-tagged upstream object whose data is decoded lazily.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Listing is a page of things with pagination cursors.
type Listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Before   string  `json:"before"`
		Children []Thing `json:"children"`
	} `json:"data"`
}

// ThreadListing is the two-element response of the comments endpoint: the first
// listing carries the post, the second the top-level comments.
type ThreadListing []Listing

// Post decodes the thing as a link (post).
func (t Thing) Post() (PostData, error) {
	var p PostData
	if t.Kind != KindLink {
		return p, fmt.Errorf("thing kind %q is not a post", t.Kind)
	}
	if err := json.Unmarshal(t.Data, &p); err != nil {
		return p, fmt.Errorf("failed to decode post: %w", err)
	}
	return p, nil
}

// Comment decodes the thing as a comment.
func (t Thing) Comment() (CommentData, error) {
	var c CommentData
	if t.Kind != KindComment {
		return c, fmt.Errorf("thing kind %q is not a comment", t.Kind)
	}
	if err := json.Unmarshal(t.Data, &c); err != nil {
		return c, fmt.Errorf("failed to decode comment: %w", err)
	}
	return c, nil
}

// Subreddit decodes the thing as a subreddit.
func (t Thing) Subreddit() (SubredditData, error) {
	var s SubredditData
	if t.Kind != KindSubreddit {
		return s, fmt.Errorf("thing kind %q is not a subreddit", t.Kind)
	}
	if err := json.Unmarshal(t.Data, &s); err != nil {
		return s, fmt.Errorf("failed to decode subreddit: %w", err)
	}
	return s, nil
}

// ============================================================================
// Post
// ============================================================================

// PostData is the raw post object as returned in listings.
type PostData struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	Ups         int     `json:"ups"`
	Likes       *bool   `json:"likes"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Over18      bool    `json:"over_18"`
	Domain      string  `json:"domain"`
	IsSelf      bool    `json:"is_self"`
	Selftext    string  `json:"selftext"`
	Thumbnail   string  `json:"thumbnail"`
	IsVideo     bool    `json:"is_video"`

	Preview     *Preview `json:"preview,omitempty"`
	Media       *Media   `json:"media,omitempty"`
	SecureMedia *Media   `json:"secure_media,omitempty"`
}

// Preview holds the upstream-generated preview images of a post.
type Preview struct {
	Images []struct {
		Source ImageSource `json:"source"`
	} `json:"images"`
}

// ImageSource is one rendition of a preview image. URL is HTML-entity escaped.
type ImageSource struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Media carries embedded media; only natively hosted video is used.
type Media struct {
	RedditVideo *RedditVideo `json:"reddit_video,omitempty"`
}

// RedditVideo is a natively hosted video.
type RedditVideo struct {
	FallbackURL string `json:"fallback_url"`
	HLSURL      string `json:"hls_url"`
	Duration    int    `json:"duration"`
}

// ============================================================================
// Comment
// ============================================================================

// CommentData is the raw comment object as returned in comment trees.
type CommentData struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ParentID   string  `json:"parent_id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	Ups        int     `json:"ups"`
	Likes      *bool   `json:"likes"`
	CreatedUTC float64 `json:"created_utc"`
	Replies    Replies `json:"replies"`
}

// Replies is the nested reply listing of a comment. The upstream sends an empty
// string instead of a listing when a comment has no replies.
type Replies struct {
	Listing *Listing
}

// UnmarshalJSON accepts either a listing object, an empty string or null.
func (r *Replies) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '"' {
		r.Listing = nil
		return nil
	}

	var l Listing
	if err := json.Unmarshal(trimmed, &l); err != nil {
		return fmt.Errorf("failed to decode replies: %w", err)
	}
	r.Listing = &l
	return nil
}

// Children returns the reply things, or nil when there are none.
func (r Replies) Children() []Thing {
	if r.Listing == nil {
		return nil
	}
	return r.Listing.Data.Children
}

// ============================================================================
// Subreddit
// ============================================================================

// SubredditData is the subset of a subreddit object used by the subscription crawl.
type SubredditData struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Over18      bool   `json:"over18"`
}
