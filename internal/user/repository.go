package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByAddress(ctx context.Context, address string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateFields(ctx context.Context, address string, fields map[string]any) (*User, error)
	Follow(ctx context.Context, follower, followee string) (int64, error)
	Unfollow(ctx context.Context, follower, followee string) (int64, error)
	Following(ctx context.Context, follower string) ([]string, error)
	IncPosts(ctx context.Context, address string, delta int) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repo) GetByAddress(ctx context.Context, address string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return &u, nil
}

func (r *repo) List(ctx context.Context) ([]User, error) {
	var out []User
	err := r.db.WithContext(ctx).Order("created_at DESC, address ASC").Find(&out).Error
	return out, err
}

func (r *repo) UpdateFields(ctx context.Context, address string, fields map[string]any) (*User, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&User{}).Where("address = ?", address).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NotFound("User")
		}
	}
	return r.GetByAddress(ctx, address)
}

// Follow inserts the edge and bumps both counters in one transaction. A
// repeated follow is a no-op and returns the current count unchanged.
func (r *repo) Follow(ctx context.Context, follower, followee string) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Follow{FollowerAddress: follower, FolloweeAddress: followee})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Exec(
			"UPDATE users SET followers_count = followers_count + 1 WHERE address = ?", followee,
		).Error; err != nil {
			return err
		}
		return tx.Exec(
			"UPDATE users SET following_count = following_count + 1 WHERE address = ?", follower,
		).Error
	})
	if err != nil {
		return 0, err
	}
	return r.followersCount(ctx, followee)
}

// Unfollow removes the edge and decrements both counters, clamped at zero.
func (r *repo) Unfollow(ctx context.Context, follower, followee string) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Follow{}, "follower_address = ? AND followee_address = ?", follower, followee)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Exec(
			"UPDATE users SET followers_count = GREATEST(followers_count - 1, 0) WHERE address = ?", followee,
		).Error; err != nil {
			return err
		}
		return tx.Exec(
			"UPDATE users SET following_count = GREATEST(following_count - 1, 0) WHERE address = ?", follower,
		).Error
	})
	if err != nil {
		return 0, err
	}
	return r.followersCount(ctx, followee)
}

func (r *repo) followersCount(ctx context.Context, address string) (int64, error) {
	var u User
	if err := r.db.WithContext(ctx).Select("followers_count").
		First(&u, "address = ?", address).Error; err != nil {
		return 0, err
	}
	return u.FollowersCount, nil
}

func (r *repo) Following(ctx context.Context, follower string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&Follow{}).
		Where("follower_address = ?", follower).
		Pluck("followee_address", &out).Error
	return out, err
}

func (r *repo) IncPosts(ctx context.Context, address string, delta int) error {
	if delta >= 0 {
		return r.db.WithContext(ctx).Exec(
			"UPDATE users SET posts_count = posts_count + ? WHERE address = ?", delta, address,
		).Error
	}
	return r.db.WithContext(ctx).Exec(
		"UPDATE users SET posts_count = GREATEST(posts_count + ?, 0) WHERE address = ?", delta, address,
	).Error
}
