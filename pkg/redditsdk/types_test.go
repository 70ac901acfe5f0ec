package redditsdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepliesUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("empty string means no replies", func(t *testing.T) {
		var c CommentData
		require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","replies":""}`), &c))
		require.Nil(t, c.Replies.Listing)
		require.Empty(t, c.Replies.Children())
	})

	t.Run("missing and null replies", func(t *testing.T) {
		var c CommentData
		require.NoError(t, json.Unmarshal([]byte(`{"id":"c1"}`), &c))
		require.Empty(t, c.Replies.Children())

		require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","replies":null}`), &c))
		require.Empty(t, c.Replies.Children())
	})

	t.Run("nested listing", func(t *testing.T) {
		raw := `{"id":"c1","replies":{"kind":"Listing","data":{"children":[
			{"kind":"t1","data":{"id":"c2","body":"child","replies":""}},
			{"kind":"more","data":{"count":3}}
		]}}}`

		var c CommentData
		require.NoError(t, json.Unmarshal([]byte(raw), &c))

		children := c.Replies.Children()
		require.Len(t, children, 2)
		require.Equal(t, KindComment, children[0].Kind)
		require.Equal(t, KindMore, children[1].Kind)

		child, err := children[0].Comment()
		require.NoError(t, err)
		require.Equal(t, "child", child.Body)
	})
}

func TestThingDecoding(t *testing.T) {
	t.Parallel()

	post := Thing{Kind: KindLink, Data: json.RawMessage(`{"id":"abc","score":42,"likes":true,"over_18":true}`)}
	p, err := post.Post()
	require.NoError(t, err)
	require.Equal(t, "abc", p.ID)
	require.Equal(t, 42, p.Score)
	require.NotNil(t, p.Likes)
	require.True(t, *p.Likes)
	require.True(t, p.Over18)

	_, err = post.Comment()
	require.Error(t, err)

	sub := Thing{Kind: KindSubreddit, Data: json.RawMessage(`{"display_name":"golang"}`)}
	s, err := sub.Subreddit()
	require.NoError(t, err)
	require.Equal(t, "golang", s.DisplayName)
}
