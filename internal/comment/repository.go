package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	// CountByPost is Redis-first with a database backfill.
	CountByPost(ctx context.Context, postID string) (int64, error)
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(s *db.Store, r *redis.Client) Repository {
	return &repo{db: s.DB, rdb: r}
}

func ckey(postID string) string { return fmt.Sprintf("comments:%s", postID) }

func (r *repo) Create(ctx context.Context, c *Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	if r.rdb != nil {
		_, _ = r.rdb.Incr(ctx, ckey(c.PostID)).Result()
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*Comment, error) {
	var c Comment
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Parent comment")
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) CountByPost(ctx context.Context, postID string) (int64, error) {
	if r.rdb != nil {
		if n, err := r.rdb.Get(ctx, ckey(postID)).Int64(); err == nil {
			return n, nil
		}
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&Comment{}).
		Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, ckey(postID), n, 0).Err()
	}
	return n, nil
}

// ListByPost returns every comment of the post, replies included, in
// chronological storage order. Threading is assembled by the service.
func (r *repo) ListByPost(ctx context.Context, postID string) ([]Comment, error) {
	var out []Comment
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}
