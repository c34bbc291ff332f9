package like

import (
	"context"

	"social-service/internal/shared/apperr"
)

type Service interface {
	Like(ctx context.Context, userAddress, postID string) (int64, error)
	Unlike(ctx context.Context, userAddress, postID string) (int64, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Like(ctx context.Context, userAddress, postID string) (int64, error) {
	ok, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.NotFound("Post")
	}
	return s.repo.Like(ctx, userAddress, postID)
}

func (s *service) Unlike(ctx context.Context, userAddress, postID string) (int64, error) {
	ok, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.NotFound("Post")
	}
	return s.repo.Unlike(ctx, userAddress, postID)
}
