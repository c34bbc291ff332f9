package comment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"social-service/internal/listquery"
	"social-service/internal/shared/apperr"
	"social-service/internal/user"
)

// Sort modes accepted by the comment listing.
var SortModes = []string{"newest", "oldest", "popular"}

// PostSource is satisfied by post.Repository.
type PostSource interface {
	Exists(ctx context.Context, id string) (bool, error)
	IncComments(ctx context.Context, id string, delta int) error
}

// ProfileSource is satisfied by user.Repository.
type ProfileSource interface {
	GetByAddress(ctx context.Context, address string) (*user.User, error)
}

type Service interface {
	Create(ctx context.Context, authorAddress, postID string, in CreateReq) (*Comment, error)
	ListByPost(ctx context.Context, postID string, q listquery.Query) (listquery.Page[Comment], error)
	// ThreadsByPost returns all top-level comments with replies attached,
	// newest first, without pagination. Used by the post detail view.
	ThreadsByPost(ctx context.Context, postID string) ([]Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type service struct {
	repo     Repository
	posts    PostSource
	profiles ProfileSource
}

func NewService(r Repository, posts PostSource, profiles ProfileSource) Service {
	return &service{repo: r, posts: posts, profiles: profiles}
}

func (s *service) Create(ctx context.Context, authorAddress, postID string, in CreateReq) (*Comment, error) {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	if in.ParentCommentID != nil {
		parent, err := s.repo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperr.Invalid("parent comment belongs to a different post")
		}
		if parent.ParentID != nil {
			return nil, apperr.Invalid("replies can only target top-level comments")
		}
	}
	u, err := s.profiles.GetByAddress(ctx, authorAddress)
	if err != nil {
		return nil, err
	}
	c := &Comment{
		ID:       "comment_" + uuid.NewString(),
		PostID:   postID,
		ParentID: in.ParentCommentID,
		Author: Author{
			Address:     u.Address,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
		},
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
		Replies:   []Comment{},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := s.posts.IncComments(ctx, postID, +1); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByPost runs the pipeline over top-level comments only; replies ride
// along nested under their parents and are never filtered independently.
func (s *service) ListByPost(ctx context.Context, postID string, q listquery.Query) (listquery.Page[Comment], error) {
	var zero listquery.Page[Comment]
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, apperr.NotFound("Post")
	}

	all, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return zero, err
	}
	top := assemble(all)

	switch q.Mode {
	case "oldest":
		top = listquery.Sort(top, listquery.Oldest(createdAt, id))
	case "popular":
		top = listquery.Sort(top, listquery.Popular(likes, id))
	default: // newest
		top = listquery.Sort(top, listquery.Newest(createdAt, id))
	}

	items, pg := listquery.Paginate(top, q.Page, q.Limit)
	return listquery.NewPage(items, pg), nil
}

func (s *service) CountByPost(ctx context.Context, postID string) (int64, error) {
	return s.repo.CountByPost(ctx, postID)
}

func (s *service) ThreadsByPost(ctx context.Context, postID string) ([]Comment, error) {
	all, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return listquery.Sort(assemble(all), listquery.Newest(createdAt, id)), nil
}

// assemble partitions a flat chronological list into top-level comments with
// their replies attached in creation order.
func assemble(all []Comment) []Comment {
	top := make([]Comment, 0, len(all))
	idx := map[string]int{}
	for _, c := range all {
		if c.ParentID == nil {
			c.Replies = []Comment{}
			top = append(top, c)
			idx[c.ID] = len(top) - 1
		}
	}
	for _, c := range all {
		if c.ParentID == nil {
			continue
		}
		if i, ok := idx[*c.ParentID]; ok {
			c.Replies = []Comment{}
			top[i].Replies = append(top[i].Replies, c)
		}
	}
	return top
}

func createdAt(c Comment) time.Time { return c.CreatedAt }
func id(c Comment) string           { return c.ID }
func likes(c Comment) int64         { return c.LikesCount }
