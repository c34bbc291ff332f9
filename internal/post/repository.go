package post

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"social-service/internal/shared/apperr"
	"social-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	ListByAuthors(ctx context.Context, addresses []string) ([]Post, error)
	Exists(ctx context.Context, id string) (bool, error)
	IncComments(ctx context.Context, id string, delta int) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) Create(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repo) GetByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post")
		}
		return nil, err
	}
	return &p, nil
}

// List returns the full collection in storage order, newest first.
func (r *repo) List(ctx context.Context) ([]Post, error) {
	var out []Post
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Find(&out).Error
	return out, err
}

func (r *repo) ListByAuthors(ctx context.Context, addresses []string) ([]Post, error) {
	if len(addresses) == 0 {
		return []Post{}, nil
	}
	var out []Post
	err := r.db.WithContext(ctx).Where("author_address IN ?", addresses).
		Order("created_at DESC, id ASC").Find(&out).Error
	return out, err
}

func (r *repo) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncComments adjusts the denormalized comment counter atomically, clamped
// at zero on decrement.
func (r *repo) IncComments(ctx context.Context, id string, delta int) error {
	if delta >= 0 {
		return r.db.WithContext(ctx).Exec(
			"UPDATE posts SET comments_count = comments_count + ? WHERE id = ?", delta, id,
		).Error
	}
	return r.db.WithContext(ctx).Exec(
		"UPDATE posts SET comments_count = GREATEST(comments_count + ?, 0) WHERE id = ?", delta, id,
	).Error
}
