package service

import (
	"context"
	"encoding/json"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

// Subscription crawl bounds.
const (
	MaxSubscriptionPages = 10
	SubscriptionPageSize = 100
)

// AccountService exposes the authenticated account.
type AccountService struct {
	Upstream Upstream
}

// Me returns the upstream account object unchanged.
func (s *AccountService) Me(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.Upstream.Get(ctx, "/api/v1/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscriptions crawls the subscribed subreddits page by page until the cursor runs
// out or MaxSubscriptionPages is reached. Hitting the page ceiling is not an error.
// Names are de-duplicated case-insensitively and sorted the same way.
func (s *AccountService) Subscriptions(ctx context.Context) ([]string, error) {
	l := slogx.FromContext(ctx)

	seen := map[string]bool{}
	names := []string{}

	after := ""
	pages := 0
	for pages < MaxSubscriptionPages {
		q := url.Values{"limit": {strconv.Itoa(SubscriptionPageSize)}}
		if after != "" {
			q.Set("after", after)
		}

		var page redditsdk.Listing
		if err := s.Upstream.Get(ctx, "/subreddits/mine/subscriber", q, &page); err != nil {
			return nil, err
		}
		pages++

		for _, child := range page.Data.Children {
			if child.Kind != redditsdk.KindSubreddit {
				continue
			}
			sub, err := child.Subreddit()
			if err != nil || sub.DisplayName == "" {
				continue
			}
			key := strings.ToLower(sub.DisplayName)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, sub.DisplayName)
		}

		after = page.Data.After
		if after == "" {
			break
		}
	}

	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	l.Debug("subscriptions crawled", "pages", pages, "count", len(names), "truncated", after != "")
	return names, nil
}
