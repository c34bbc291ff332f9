package like

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-service/internal/shared/db"
)

type Repository interface {
	// Like records the like and returns the post's like count. A repeated
	// like is a no-op.
	Like(ctx context.Context, userAddress, postID string) (int64, error)
	// Unlike removes the like; the counter is clamped at zero.
	Unlike(ctx context.Context, userAddress, postID string) (int64, error)
	IsLiked(ctx context.Context, userAddress, postID string) (bool, error)
	PostExists(ctx context.Context, postID string) (bool, error)
}

type repo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(s *db.Store, r *redis.Client) Repository {
	return &repo{db: s.DB, rdb: r}
}

func likeKey(postID string) string { return fmt.Sprintf("likes:%s", postID) }

func (r *repo) Like(ctx context.Context, userAddress, postID string) (int64, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&PostLike{PostID: postID, UserAddress: userAddress})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return r.count(ctx, postID)
	}
	var n int64
	if err := r.db.WithContext(ctx).Raw(
		"UPDATE posts SET likes_count = likes_count + 1 WHERE id = ? RETURNING likes_count", postID,
	).Scan(&n).Error; err != nil {
		return 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, likeKey(postID), n, 0).Err()
	}
	return n, nil
}

func (r *repo) Unlike(ctx context.Context, userAddress, postID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&PostLike{}, "post_id = ? AND user_address = ?", postID, userAddress)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return r.count(ctx, postID)
	}
	var n int64
	if err := r.db.WithContext(ctx).Raw(
		"UPDATE posts SET likes_count = GREATEST(likes_count - 1, 0) WHERE id = ? RETURNING likes_count", postID,
	).Scan(&n).Error; err != nil {
		return 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, likeKey(postID), n, 0).Err()
	}
	return n, nil
}

func (r *repo) IsLiked(ctx context.Context, userAddress, postID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&PostLike{}).
		Where("post_id = ? AND user_address = ?", postID, userAddress).Count(&n).Error
	return n > 0, err
}

func (r *repo) PostExists(ctx context.Context, postID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("posts").Where("id = ?", postID).Count(&n).Error
	return n > 0, err
}

func (r *repo) count(ctx context.Context, postID string) (int64, error) {
	if r.rdb != nil {
		if n, err := r.rdb.Get(ctx, likeKey(postID)).Int64(); err == nil {
			return n, nil
		}
	}
	var n int64
	if err := r.db.WithContext(ctx).Table("posts").Select("likes_count").
		Where("id = ?", postID).Scan(&n).Error; err != nil {
		return 0, err
	}
	if r.rdb != nil {
		_ = r.rdb.Set(ctx, likeKey(postID), n, 0).Err()
	}
	return n, nil
}
