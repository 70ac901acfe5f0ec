package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/frontpage/internal/frontpage/domain"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

func fixedNow() time.Time { return testNow }

func TestParseFeedQuery(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		q, err := ParseFeedQuery(url.Values{})
		require.NoError(t, err)
		require.Empty(t, q.ExcludeDomains)

		q.ExcludeDomains = nil
		require.Equal(t, FeedQuery{
			Subreddit: "best",
			Limit:     50,
			MinScore:  0,
			Sort:      domain.SortRank,
			Window:    domain.WindowDay,
		}, q)
	})

	t.Run("clamps and falls back", func(t *testing.T) {
		cases := []struct {
			limit, min     string
			wantL, wantMin int
		}{
			{"5", "-3", 10, 0},
			{"500", "20000", 100, 10000},
			{"abc", "xyz", 50, 0},
			{"25", "100", 25, 100},
		}
		for _, tc := range cases {
			q, err := ParseFeedQuery(url.Values{"limit": {tc.limit}, "min": {tc.min}})
			require.NoError(t, err)
			require.Equal(t, tc.wantL, q.Limit, "limit=%s", tc.limit)
			require.Equal(t, tc.wantMin, q.MinScore, "min=%s", tc.min)
		}
	})

	t.Run("exclude splits on comma plus and whitespace", func(t *testing.T) {
		q, err := ParseFeedQuery(url.Values{"exclude": {"YouTube.com, imgur.com+ reddit.com\tx.com,,"}})
		require.NoError(t, err)
		require.Equal(t, []string{"youtube.com", "imgur.com", "reddit.com", "x.com"}, q.ExcludeDomains)
	})

	t.Run("nsfw sort and window", func(t *testing.T) {
		q, err := ParseFeedQuery(url.Values{"nsfw": {"TRUE"}, "sort": {"top"}, "t": {"week"}})
		require.NoError(t, err)
		require.True(t, q.IncludeAdult)
		require.Equal(t, domain.SortTop, q.Sort)
		require.Equal(t, domain.WindowWeek, q.Window)

		q, err = ParseFeedQuery(url.Values{"nsfw": {"yes"}, "sort": {"hot"}, "t": {"decade"}})
		require.NoError(t, err)
		require.False(t, q.IncludeAdult)
		require.Equal(t, domain.SortRank, q.Sort)
		require.Equal(t, domain.WindowDay, q.Window)
	})

	t.Run("rejects path characters in sub", func(t *testing.T) {
		for _, sub := range []string{"../api", "golang/new", "a b", "r?x"} {
			_, err := ParseFeedQuery(url.Values{"sub": {sub}})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, sub)
			require.Equal(t, "sub", vErr.Field)
		}

		q, err := ParseFeedQuery(url.Values{"sub": {"golang+rust"}})
		require.NoError(t, err)
		require.Equal(t, "golang+rust", q.Subreddit)
	})
}

func TestFeedListingSelection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		query     url.Values
		wantPath  string
		wantQuery url.Values
	}{
		{"front page", url.Values{}, "/best", url.Values{"limit": {"50"}}},
		{"home alias ignores top", url.Values{"sub": {"HOME"}, "sort": {"top"}}, "/best", url.Values{"limit": {"50"}}},
		{"top with window", url.Values{"sub": {"golang"}, "sort": {"top"}, "t": {"month"}, "limit": {"20"}}, "/r/golang/top", url.Values{"limit": {"20"}, "t": {"month"}}},
		{"new otherwise", url.Values{"sub": {"golang+rust"}, "sort": {"rank"}}, "/r/golang+rust/new", url.Values{"limit": {"50"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			up := newFakeUpstream().on(tc.wantPath, listing(""))
			svc := &FeedService{Upstream: up, Now: fixedNow}

			q, err := ParseFeedQuery(tc.query)
			require.NoError(t, err)

			items, err := svc.Feed(context.Background(), q)
			require.NoError(t, err)
			require.Empty(t, items)

			calls := up.recorded()
			require.Len(t, calls, 1)
			require.Equal(t, tc.wantPath, calls[0].Path)
			require.Equal(t, tc.wantQuery, calls[0].Values)
		})
	}
}

func TestFeedFilters(t *testing.T) {
	t.Parallel()

	body := listing("",
		post(`"id":"low","score":50,"domain":"i.redd.it"`),
		post(`"id":"high","score":150,"domain":"i.redd.it"`),
		post(`"id":"adult","score":500,"over_18":true,"domain":"i.redd.it"`),
		post(`"id":"self","score":300,"domain":"self.reddit.com"`),
		`{"kind":"t1","data":{"id":"stray"}}`,
	)

	feed := func(t *testing.T, params url.Values) []string {
		t.Helper()
		up := newFakeUpstream().on("/best", body)
		q, err := ParseFeedQuery(params)
		require.NoError(t, err)
		items, err := (&FeedService{Upstream: up, Now: fixedNow}).Feed(context.Background(), q)
		require.NoError(t, err)

		ids := make([]string, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		return ids
	}

	t.Run("min score keeps only the 150 item", func(t *testing.T) {
		up := newFakeUpstream().on("/best", listing("",
			post(`"id":"a","score":50`),
			post(`"id":"b","score":150`),
		))
		q, err := ParseFeedQuery(url.Values{"min": {"100"}})
		require.NoError(t, err)

		items, err := (&FeedService{Upstream: up, Now: fixedNow}).Feed(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "b", items[0].ID)
		require.Equal(t, 150, items[0].Score)
	})

	t.Run("adult content hidden by default", func(t *testing.T) {
		require.NotContains(t, feed(t, url.Values{}), "adult")
		require.Contains(t, feed(t, url.Values{"nsfw": {"true"}}), "adult")
	})

	t.Run("domain exclusion is a substring match", func(t *testing.T) {
		ids := feed(t, url.Values{"exclude": {"Reddit.com"}})
		require.NotContains(t, ids, "self")
		require.ElementsMatch(t, []string{"low", "high"}, ids)
	})

	t.Run("non-post children are skipped", func(t *testing.T) {
		require.NotContains(t, feed(t, url.Values{"nsfw": {"true"}}), "stray")
	})
}

func TestFeedOrdering(t *testing.T) {
	t.Parallel()

	now := float64(testNow.Unix())
	body := listing("",
		post(`"id":"old-popular","score":900,"ups":900,"num_comments":400,"created_utc":`+ftoa(now-48*3600)),
		post(`"id":"fresh","score":10,"ups":10,"created_utc":`+ftoa(now-600)),
		post(`"id":"mid","score":120,"ups":120,"num_comments":5,"created_utc":`+ftoa(now-6*3600)),
		post(`"id":"tie","score":120,"ups":120,"created_utc":`+ftoa(now-7*3600)),
	)

	run := func(t *testing.T, sort string) []domain.FeedItem {
		t.Helper()
		up := newFakeUpstream().on("/r/golang/new", body).on("/r/golang/top", body)
		q, err := ParseFeedQuery(url.Values{"sub": {"golang"}, "sort": {sort}})
		require.NoError(t, err)
		items, err := (&FeedService{Upstream: up, Now: fixedNow}).Feed(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, items, 4)
		return items
	}

	t.Run("new is non-increasing in created_utc", func(t *testing.T) {
		items := run(t, "new")
		for i := 1; i < len(items); i++ {
			require.GreaterOrEqual(t, items[i-1].CreatedUTC, items[i].CreatedUTC)
		}
		require.Equal(t, "fresh", items[0].ID)
	})

	t.Run("top is non-increasing in score and stable on ties", func(t *testing.T) {
		items := run(t, "top")
		for i := 1; i < len(items); i++ {
			require.GreaterOrEqual(t, items[i-1].Score, items[i].Score)
		}
		require.Equal(t, []string{"old-popular", "mid", "tie", "fresh"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
	})

	t.Run("default is non-increasing in rank", func(t *testing.T) {
		items := run(t, "")
		for i := 1; i < len(items); i++ {
			require.GreaterOrEqual(t, items[i-1].Rank, items[i].Rank)
		}
		for _, it := range items {
			require.Equal(t, domain.Rank(it.Ups, it.NumComments, it.CreatedUTC, testNow), it.Rank)
		}
	})
}

func TestNormalizePost(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, fields string) domain.FeedItem {
		t.Helper()
		var l redditsdk.Listing
		require.NoError(t, jsonUnmarshal(listing("", post(fields)), &l))
		p, err := l.Data.Children[0].Post()
		require.NoError(t, err)
		return NormalizePost(p, testNow)
	}

	t.Run("preview image is unescaped and preferred", func(t *testing.T) {
		it := decode(t, `"id":"a","url":"https://example.com/pic.png",
			"preview":{"images":[{"source":{"url":"https://preview.redd.it/x.jpg?width=640&amp;s=abc"}}]}`)
		require.Equal(t, "https://preview.redd.it/x.jpg?width=640&s=abc", it.Image)
	})

	t.Run("direct image extension on the path", func(t *testing.T) {
		require.Equal(t, "https://i.redd.it/a.JPEG?x=1", decode(t, `"url":"https://i.redd.it/a.JPEG?x=1"`).Image)
		require.Equal(t, "https://i.imgur.com/a.webp", decode(t, `"url":"https://i.imgur.com/a.webp"`).Image)
		require.Empty(t, decode(t, `"url":"https://example.com/page.html?f=a.png"`).Image)
		require.Empty(t, decode(t, `"url":"https://example.com/article"`).Image)
	})

	t.Run("video from media or secure media", func(t *testing.T) {
		it := decode(t, `"media":{"reddit_video":{"fallback_url":"https://v.redd.it/1/DASH_720.mp4"}}`)
		require.Equal(t, "https://v.redd.it/1/DASH_720.mp4", it.Video)

		it = decode(t, `"media":null,"secure_media":{"reddit_video":{"fallback_url":"https://v.redd.it/2/DASH_480.mp4"}}`)
		require.Equal(t, "https://v.redd.it/2/DASH_480.mp4", it.Video)

		require.Empty(t, decode(t, `"media":{"oembed":{}}`).Video)
	})

	t.Run("thumbnail placeholders dropped", func(t *testing.T) {
		require.Empty(t, decode(t, `"thumbnail":"self"`).Thumbnail)
		require.Empty(t, decode(t, `"thumbnail":"nsfw"`).Thumbnail)
		require.Equal(t, "https://b.thumbs.redditmedia.com/t.jpg", decode(t, `"thumbnail":"https://b.thumbs.redditmedia.com/t.jpg"`).Thumbnail)
	})

	t.Run("self text only for self posts", func(t *testing.T) {
		require.Equal(t, "hello", decode(t, `"is_self":true,"selftext":"hello"`).Selftext)
		require.Empty(t, decode(t, `"is_self":false,"selftext":"hello"`).Selftext)
	})

	t.Run("vote state and fullname", func(t *testing.T) {
		it := decode(t, `"id":"abc","likes":false`)
		require.Equal(t, domain.VoteDown, it.Vote)
		require.Equal(t, "t3_abc", it.Name)

		it = decode(t, `"id":"abc","name":"t3_abc","likes":true,"title":"Q&amp;A"`)
		require.Equal(t, domain.VoteUp, it.Vote)
		require.Equal(t, "Q&A", it.Title)
	})
}

func TestFeedPropagatesUpstreamErrors(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().fail("/best", &redditsdk.UpstreamError{StatusCode: 403, Body: "insufficient_scope"})
	q, err := ParseFeedQuery(url.Values{})
	require.NoError(t, err)

	_, err = (&FeedService{Upstream: up}).Feed(context.Background(), q)
	var upErr *redditsdk.UpstreamError
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, 403, upErr.StatusCode)
}
