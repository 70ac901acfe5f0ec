package service

import (
	"cmp"
	"context"
	"fmt"
	"html"
	"net/url"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/domain"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// Feed query defaults and bounds.
const (
	DefaultSubreddit = "best"

	DefaultFeedLimit = 50
	MinFeedLimit     = 10
	MaxFeedLimit     = 100

	DefaultMinScore = 0
	MaxMinScore     = 10000
)

var subredditRe = regexp.MustCompile(`^[A-Za-z0-9_+]+$`)

// imageExtensions are the URL path extensions treated as direct image links.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FeedQuery is a normalized feed request.
type FeedQuery struct {
	Subreddit      string // "best", "home", a name or a+b multi
	Limit          int
	MinScore       int
	ExcludeDomains []string // lower-cased substrings
	IncludeAdult   bool
	Sort           domain.SortMode
	Window         domain.TopWindow
}

// ParseFeedQuery normalizes the feed query parameters. Only an invalid subreddit is
// rejected; every other parameter falls back to its default.
func ParseFeedQuery(q url.Values) (FeedQuery, error) {
	sub := strings.TrimSpace(q.Get("sub"))
	if sub == "" {
		sub = DefaultSubreddit
	}
	if !subredditRe.MatchString(sub) {
		return FeedQuery{}, invalid("sub", "invalid subreddit %q", sub)
	}

	return FeedQuery{
		Subreddit:      sub,
		Limit:          intParam(q, "limit", DefaultFeedLimit, MinFeedLimit, MaxFeedLimit),
		MinScore:       intParam(q, "min", DefaultMinScore, 0, MaxMinScore),
		ExcludeDomains: parseExcludes(q.Get("exclude")),
		IncludeAdult:   strings.EqualFold(strings.TrimSpace(q.Get("nsfw")), "true"),
		Sort:           domain.ParseSortMode(strings.ToLower(q.Get("sort"))),
		Window:         domain.ParseTopWindow(strings.ToLower(q.Get("t"))),
	}, nil
}

// parseExcludes splits on commas, pluses and whitespace.
func parseExcludes(raw string) []string {
	return strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ',' || r == '+' || unicode.IsSpace(r)
	})
}

// IsFrontPage reports whether sub selects the personalized front page.
func IsFrontPage(sub string) bool {
	return strings.EqualFold(sub, "best") || strings.EqualFold(sub, "home")
}

// listing returns the upstream path and query for q.
func (q FeedQuery) listing() (string, url.Values) {
	params := url.Values{"limit": {strconv.Itoa(q.Limit)}}

	switch {
	case IsFrontPage(q.Subreddit):
		return "/best", params
	case q.Sort == domain.SortTop:
		params.Set("t", string(q.Window))
		return "/r/" + q.Subreddit + "/top", params
	default:
		return "/r/" + q.Subreddit + "/new", params
	}
}

// keep applies the adult, score and domain filters in that order.
func (q FeedQuery) keep(p redditsdk.PostData) bool {
	if p.Over18 && !q.IncludeAdult {
		return false
	}
	if p.Score < q.MinScore {
		return false
	}
	d := strings.ToLower(p.Domain)
	for _, ex := range q.ExcludeDomains {
		if strings.Contains(d, ex) {
			return false
		}
	}
	return true
}

// FeedService fetches a listing and filters, ranks and orders it.
type FeedService struct {
	Upstream Upstream

	// Now defaults to time.Now.
	Now func() time.Time
}

// Feed returns the filtered and ordered items for q.
func (s *FeedService) Feed(ctx context.Context, q FeedQuery) ([]domain.FeedItem, error) {
	l := slogx.FromContext(ctx)

	p, params := q.listing()

	var listing redditsdk.Listing
	if err := s.Upstream.Get(ctx, p, params, &listing); err != nil {
		return nil, err
	}

	now := nowOr(s.Now)
	items := make([]domain.FeedItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Kind != redditsdk.KindLink {
			continue
		}
		post, err := child.Post()
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", p, err)
		}
		if !q.keep(post) {
			continue
		}
		items = append(items, NormalizePost(post, now))
	}

	SortFeed(items, q.Sort)

	l.Debug("feed built",
		"listing", p,
		"fetched", len(listing.Data.Children),
		"kept", len(items),
		"sort", q.Sort,
	)
	return items, nil
}

// SortFeed orders items in place; ties keep their upstream order.
func SortFeed(items []domain.FeedItem, mode domain.SortMode) {
	switch mode {
	case domain.SortNew:
		slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
			return cmp.Compare(b.CreatedUTC, a.CreatedUTC)
		})
	case domain.SortTop:
		slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
			return cmp.Compare(b.Score, a.Score)
		})
	default:
		slices.SortStableFunc(items, func(a, b domain.FeedItem) int {
			return cmp.Compare(b.Rank, a.Rank)
		})
	}
}

// NormalizePost converts an upstream post into a FeedItem and ranks it at now.
func NormalizePost(p redditsdk.PostData, now time.Time) domain.FeedItem {
	item := domain.FeedItem{
		ID:          p.ID,
		Name:        p.Name,
		Title:       html.UnescapeString(p.Title),
		URL:         html.UnescapeString(p.URL),
		Permalink:   p.Permalink,
		Subreddit:   p.Subreddit,
		Author:      p.Author,
		Score:       p.Score,
		Ups:         p.Ups,
		Vote:        domain.VoteFromLikes(p.Likes),
		NumComments: p.NumComments,
		CreatedUTC:  p.CreatedUTC,
		Over18:      p.Over18,
		Domain:      p.Domain,
		Rank:        domain.Rank(p.Ups, p.NumComments, p.CreatedUTC, now),
		IsSelf:      p.IsSelf,
		Image:       postImage(p),
		Video:       postVideo(p),
		Thumbnail:   thumbnail(p.Thumbnail),
	}
	if item.Name == "" && p.ID != "" {
		item.Name = domain.KindPost.Prefix() + p.ID
	}
	if p.IsSelf {
		item.Selftext = p.Selftext
	}
	return item
}

// postImage prefers the preview source, then a direct image link.
func postImage(p redditsdk.PostData) string {
	if p.Preview != nil && len(p.Preview.Images) > 0 {
		if src := p.Preview.Images[0].Source.URL; src != "" {
			return html.UnescapeString(src)
		}
	}

	raw := html.UnescapeString(p.URL)
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if imageExtensions[strings.ToLower(path.Ext(u.Path))] {
		return raw
	}
	return ""
}

func postVideo(p redditsdk.PostData) string {
	for _, m := range []*redditsdk.Media{p.Media, p.SecureMedia} {
		if m != nil && m.RedditVideo != nil && m.RedditVideo.FallbackURL != "" {
			return m.RedditVideo.FallbackURL
		}
	}
	return ""
}

// thumbnail drops placeholders such as "self", "default" and "nsfw".
func thumbnail(t string) string {
	if strings.HasPrefix(t, "https://") || strings.HasPrefix(t, "http://") {
		return html.UnescapeString(t)
	}
	return ""
}
