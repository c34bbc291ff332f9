package topic

import (
	"context"

	"social-service/internal/listquery"
)

type Service interface {
	Trending(ctx context.Context, q listquery.Query) ([]Topic, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Trending serves the stored list for the timeframe, first q.Limit entries
// in stored order.
func (s *service) Trending(ctx context.Context, q listquery.Query) ([]Topic, error) {
	topics, err := s.repo.ListByTimeframe(ctx, q.Mode)
	if err != nil {
		return nil, err
	}
	items, _ := listquery.Paginate(topics, q.Page, q.Limit)
	return items, nil
}
