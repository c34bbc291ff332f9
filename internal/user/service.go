package user

import (
	"context"

	"social-service/internal/shared/apperr"
)

type Service interface {
	Get(ctx context.Context, address string) (*User, error)
	Update(ctx context.Context, address string, in UpdateReq) (*User, error)
	Follow(ctx context.Context, follower, followee string) (int64, error)
	Unfollow(ctx context.Context, follower, followee string) (int64, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Get(ctx context.Context, address string) (*User, error) {
	return s.repo.GetByAddress(ctx, address)
}

func (s *service) Update(ctx context.Context, address string, in UpdateReq) (*User, error) {
	if _, err := s.repo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.DisplayName != nil {
		fields["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Avatar != nil {
		fields["avatar"] = *in.Avatar
	}
	if in.CoverImage != nil {
		fields["cover_image"] = *in.CoverImage
	}
	return s.repo.UpdateFields(ctx, address, fields)
}

func (s *service) Follow(ctx context.Context, follower, followee string) (int64, error) {
	if follower == followee {
		return 0, apperr.Invalid("cannot follow yourself")
	}
	if _, err := s.repo.GetByAddress(ctx, followee); err != nil {
		return 0, err
	}
	return s.repo.Follow(ctx, follower, followee)
}

func (s *service) Unfollow(ctx context.Context, follower, followee string) (int64, error) {
	if _, err := s.repo.GetByAddress(ctx, followee); err != nil {
		return 0, err
	}
	return s.repo.Unfollow(ctx, follower, followee)
}
