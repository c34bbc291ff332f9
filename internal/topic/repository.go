package topic

import (
	"context"

	"gorm.io/gorm"

	"social-service/internal/shared/db"
)

type Repository interface {
	ListByTimeframe(ctx context.Context, timeframe string) ([]Topic, error)
	// ListForSearch returns the day list, the set topic search runs over.
	ListForSearch(ctx context.Context) ([]Topic, error)
	Replace(ctx context.Context, timeframe string, topics []Topic) error
}

type repo struct{ db *gorm.DB }

func NewRepository(s *db.Store) Repository { return &repo{db: s.DB} }

func (r *repo) ListByTimeframe(ctx context.Context, timeframe string) ([]Topic, error) {
	var out []Topic
	err := r.db.WithContext(ctx).Where("timeframe = ?", timeframe).
		Order("position ASC").Find(&out).Error
	return out, err
}

func (r *repo) ListForSearch(ctx context.Context) ([]Topic, error) {
	return r.ListByTimeframe(ctx, "day")
}

// Replace swaps a timeframe's list wholesale; the seeder uses it.
func (r *repo) Replace(ctx context.Context, timeframe string, topics []Topic) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Topic{}, "timeframe = ?", timeframe).Error; err != nil {
			return err
		}
		for i := range topics {
			topics[i].Timeframe = timeframe
			topics[i].Position = i
		}
		if len(topics) == 0 {
			return nil
		}
		return tx.Create(&topics).Error
	})
}
