package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/stretchr/testify/require"
)

func sub(name string) string {
	return `{"kind":"t5","data":{"display_name":"` + name + `"}}`
}

func TestMe(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().on("/api/v1/me", `{"name":"alice","link_karma":12}`)
	raw, err := (&AccountService{Upstream: up}).Me(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"alice","link_karma":12}`, string(raw))
}

func TestSubscriptions(t *testing.T) {
	t.Parallel()

	t.Run("follows the cursor and sorts case-insensitively", func(t *testing.T) {
		up := newFakeUpstream().on("/subreddits/mine/subscriber",
			listing("t5_page2", sub("rust"), sub("Golang")),
			listing("", sub("golang"), sub("aww"), `{"kind":"t3","data":{"id":"x"}}`),
		)

		names, err := (&AccountService{Upstream: up}).Subscriptions(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"aww", "Golang", "rust"}, names)

		calls := up.recorded()
		require.Len(t, calls, 2)
		require.Equal(t, "100", calls[0].Values.Get("limit"))
		require.Empty(t, calls[0].Values.Get("after"))
		require.Equal(t, "t5_page2", calls[1].Values.Get("after"))
	})

	t.Run("stops at the page ceiling with what was collected", func(t *testing.T) {
		up := newFakeUpstream()
		for i := range MaxSubscriptionPages + 3 {
			up.on("/subreddits/mine/subscriber", listing("t5_next"+strconv.Itoa(i), sub("s"+strconv.Itoa(i))))
		}

		names, err := (&AccountService{Upstream: up}).Subscriptions(context.Background())
		require.NoError(t, err)
		require.Len(t, names, MaxSubscriptionPages)
		require.Len(t, up.recorded(), MaxSubscriptionPages)
	})

	t.Run("empty account", func(t *testing.T) {
		up := newFakeUpstream().on("/subreddits/mine/subscriber", listing(""))
		names, err := (&AccountService{Upstream: up}).Subscriptions(context.Background())
		require.NoError(t, err)
		require.NotNil(t, names)
		require.Empty(t, names)
	})

	t.Run("upstream failure fails the crawl", func(t *testing.T) {
		up := newFakeUpstream().fail("/subreddits/mine/subscriber", &redditsdk.UpstreamError{StatusCode: 401})
		_, err := (&AccountService{Upstream: up}).Subscriptions(context.Background())
		var upErr *redditsdk.UpstreamError
		require.ErrorAs(t, err, &upErr)
	})
}
