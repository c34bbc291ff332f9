package comment

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-service/internal/listquery"
	"social-service/internal/shared/apperr"
	"social-service/internal/user"
)

type fakeRepo struct {
	comments []Comment
}

func (f *fakeRepo) Create(_ context.Context, c *Comment) error {
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Comment, error) {
	for i := range f.comments {
		if f.comments[i].ID == id {
			return &f.comments[i], nil
		}
	}
	return nil, apperr.NotFound("Parent comment")
}

func (f *fakeRepo) CountByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for _, c := range f.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListByPost(_ context.Context, postID string) ([]Comment, error) {
	var out []Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakePosts struct {
	ids    map[string]bool
	counts map[string]int
}

func (f *fakePosts) Exists(_ context.Context, id string) (bool, error) { return f.ids[id], nil }
func (f *fakePosts) IncComments(_ context.Context, id string, delta int) error {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[id] += delta
	return nil
}

type fakeProfiles map[string]*user.User

func (f fakeProfiles) GetByAddress(_ context.Context, address string) (*user.User, error) {
	if u, ok := f[address]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User")
}

func ts(h int) time.Time {
	return time.Date(2023, 6, 21, h, 0, 0, 0, time.UTC)
}

func pstr(s string) *string { return &s }

func newTestService(comments []Comment) (Service, *fakeRepo, *fakePosts) {
	repo := &fakeRepo{comments: comments}
	posts := &fakePosts{ids: map[string]bool{"post_1": true}}
	profiles := fakeProfiles{
		"0xabc": {Address: "0xabc", Username: "web3fan", DisplayName: "Web3 Fan"},
	}
	return NewService(repo, posts, profiles), repo, posts
}

// Top-level filter plus popular sort: reply C is excluded, B outranks A.
func TestListByPostPopularTopLevelOnly(t *testing.T) {
	svc, _, _ := newTestService([]Comment{
		{ID: "comment_a", PostID: "post_1", LikesCount: 1, CreatedAt: ts(10)},
		{ID: "comment_b", PostID: "post_1", LikesCount: 3, CreatedAt: ts(11)},
		{ID: "comment_c", PostID: "post_1", ParentID: pstr("comment_a"), LikesCount: 1, CreatedAt: ts(12)},
	})

	page, err := svc.ListByPost(context.Background(), "post_1", listquery.Query{
		Page: 1, Limit: 20, Mode: "popular",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "comment_b", page.Items[0].ID)
	assert.Equal(t, "comment_a", page.Items[1].ID)
	assert.Equal(t, 2, page.Pagination.TotalCount)

	// the reply rides along nested under its parent
	require.Len(t, page.Items[1].Replies, 1)
	assert.Equal(t, "comment_c", page.Items[1].Replies[0].ID)
}

func TestListByPostNewestDefault(t *testing.T) {
	svc, _, _ := newTestService([]Comment{
		{ID: "comment_a", PostID: "post_1", CreatedAt: ts(10)},
		{ID: "comment_b", PostID: "post_1", CreatedAt: ts(12)},
		{ID: "comment_c", PostID: "post_1", CreatedAt: ts(11)},
	})

	page, err := svc.ListByPost(context.Background(), "post_1", listquery.Query{
		Page: 1, Limit: 20, Mode: "newest",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"comment_b", "comment_c", "comment_a"},
		[]string{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
}

func TestListByPostUnknownPost(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, err := svc.ListByPost(context.Background(), "post_missing", listquery.Query{Page: 1, Limit: 20})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateComment(t *testing.T) {
	svc, repo, posts := newTestService(nil)

	c, err := svc.Create(context.Background(), "0xabc", "post_1", CreateReq{Content: "Great first post!"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "web3fan", c.Author.Username)
	assert.Nil(t, c.ParentID)
	assert.Len(t, repo.comments, 1)
	assert.Equal(t, 1, posts.counts["post_1"])
}

func TestCountByPostIncludesReplies(t *testing.T) {
	svc, _, _ := newTestService([]Comment{
		{ID: "comment_a", PostID: "post_1", CreatedAt: ts(10)},
		{ID: "comment_b", PostID: "post_1", ParentID: pstr("comment_a"), CreatedAt: ts(11)},
		{ID: "comment_c", PostID: "post_other", CreatedAt: ts(12)},
	})

	n, err := svc.CountByPost(context.Background(), "post_1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCreateReplyValidation(t *testing.T) {
	svc, _, _ := newTestService([]Comment{
		{ID: "comment_top", PostID: "post_1", CreatedAt: ts(10)},
		{ID: "comment_reply", PostID: "post_1", ParentID: pstr("comment_top"), CreatedAt: ts(11)},
	})
	ctx := context.Background()

	_, err := svc.Create(ctx, "0xabc", "post_1", CreateReq{
		Content: "hi", ParentCommentID: pstr("comment_missing"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.Create(ctx, "0xabc", "post_1", CreateReq{
		Content: "hi", ParentCommentID: pstr("comment_reply"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.Code(err))

	ok, err := svc.Create(ctx, "0xabc", "post_1", CreateReq{
		Content: "hi", ParentCommentID: pstr("comment_top"),
	})
	require.NoError(t, err)
	assert.Equal(t, "comment_top", *ok.ParentID)
}

func TestCreateOnMissingPost(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, err := svc.Create(context.Background(), "0xabc", "post_missing", CreateReq{Content: "hi"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// The endpoint's sort parameter only accepts the documented modes.
func TestListSpecRejectsUnknownSort(t *testing.T) {
	_, err := listquery.Parse(url.Values{"sort": {"spiciest"}}, listSpec)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.Code(err))
}
