package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-service/internal/listquery"
	"social-service/internal/post"
	"social-service/internal/topic"
	"social-service/internal/user"
)

type fixedPosts []post.Post

func (f fixedPosts) List(context.Context) ([]post.Post, error) { return f, nil }

type fixedUsers []user.User

func (f fixedUsers) List(context.Context) ([]user.User, error) { return f, nil }

type fixedTopics []topic.Topic

func (f fixedTopics) ListForSearch(context.Context) ([]topic.Topic, error) { return f, nil }

func newTestService() Service {
	return NewService(
		fixedPosts{
			{ID: "post_1", Content: "Building on Web3 tech", Author: post.Author{Username: "cryptouser", DisplayName: "Crypto User"}},
			{ID: "post_2", Content: "gm everyone", Author: post.Author{Username: "web3fan", DisplayName: "Web3 Fan"}},
			{ID: "post_3", Content: "unrelated", Author: post.Author{Username: "other", DisplayName: "Other"}},
		},
		fixedUsers{
			{Address: "0x1", Username: "web3fan", DisplayName: "Web3 Fan", Bio: "decentralization"},
			{Address: "0x2", Username: "other", DisplayName: "Other", Bio: "likes web3 a lot"},
			{Address: "0x3", Username: "nobody", DisplayName: "Nobody", Bio: "nothing here"},
		},
		fixedTopics{
			{Tag: "web3", PostCount: 1250, Trend: "+15%"},
			{Tag: "defi", PostCount: 980, Trend: "+8%"},
		},
	)
}

func q(text, mode string) listquery.Query {
	return listquery.Query{Page: 1, Limit: 20, Mode: mode, Text: text}
}

// "WEB3" and "web3" return identical result sets.
func TestSearchCaseInsensitive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	upper, err := svc.Search(ctx, q("WEB3", "all"))
	require.NoError(t, err)
	lower, err := svc.Search(ctx, q("web3", "all"))
	require.NoError(t, err)

	assert.Equal(t, upper.Results["posts"], lower.Results["posts"])
	assert.Equal(t, upper.Results["users"], lower.Results["users"])
	assert.Equal(t, upper.Results["topics"], lower.Results["topics"])
}

func TestSearchMatchesPerEntityFields(t *testing.T) {
	svc := newTestService()
	res, err := svc.Search(context.Background(), q("web3", "all"))
	require.NoError(t, err)

	posts := res.Results["posts"].([]post.Post)
	users := res.Results["users"].([]user.User)
	topics := res.Results["topics"].([]topic.Topic)

	// post_1 by content, post_2 by author username/display name
	require.Len(t, posts, 2)
	assert.Equal(t, "post_1", posts[0].ID)
	assert.Equal(t, "post_2", posts[1].ID)

	// by username and by bio
	require.Len(t, users, 2)
	require.Len(t, topics, 1)
	assert.Equal(t, "web3", topics[0].Tag)

	assert.Equal(t, 5, res.Pagination.TotalCount)
	assert.Equal(t, 1, res.Pagination.TotalPages)
}

func TestSearchTypeRestriction(t *testing.T) {
	svc := newTestService()
	res, err := svc.Search(context.Background(), q("web3", "users"))
	require.NoError(t, err)

	_, hasPosts := res.Results["posts"]
	_, hasTopics := res.Results["topics"]
	assert.False(t, hasPosts)
	assert.False(t, hasTopics)
	assert.Len(t, res.Results["users"].([]user.User), 2)
}

// No matches: every requested collection is present and empty, totalPages 0.
func TestSearchNoMatches(t *testing.T) {
	svc := newTestService()
	res, err := svc.Search(context.Background(), q("nonexistent", "all"))
	require.NoError(t, err)

	assert.Empty(t, res.Results["posts"].([]post.Post))
	assert.Empty(t, res.Results["users"].([]user.User))
	assert.Empty(t, res.Results["topics"].([]topic.Topic))
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNextPage)
}

// Slicing is per entity type while the pagination block describes the
// aggregate of returned slices.
func TestSearchPerTypeSlicing(t *testing.T) {
	var posts fixedPosts
	for i := 0; i < 5; i++ {
		posts = append(posts, post.Post{ID: string(rune('a' + i)), Content: "web3"})
	}
	var users fixedUsers
	for i := 0; i < 3; i++ {
		users = append(users, user.User{Address: string(rune('a' + i)), Bio: "web3"})
	}
	svc := NewService(posts, users, fixedTopics{})

	res, err := svc.Search(context.Background(), listquery.Query{Page: 1, Limit: 2, Mode: "all", Text: "web3"})
	require.NoError(t, err)

	assert.Len(t, res.Results["posts"].([]post.Post), 2)
	assert.Len(t, res.Results["users"].([]user.User), 2)
	assert.Equal(t, 4, res.Pagination.TotalCount)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNextPage)
}
