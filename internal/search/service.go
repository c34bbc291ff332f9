package search

import (
	"context"

	"social-service/internal/listquery"
	"social-service/internal/post"
	"social-service/internal/topic"
	"social-service/internal/user"
)

// Types accepted by the search endpoint.
var Types = []string{"posts", "users", "topics", "all"}

// PostSource, UserSource and TopicSource are satisfied by the corresponding
// repositories.
type PostSource interface {
	List(ctx context.Context) ([]post.Post, error)
}

type UserSource interface {
	List(ctx context.Context) ([]user.User, error)
}

type TopicSource interface {
	ListForSearch(ctx context.Context) ([]topic.Topic, error)
}

// Result is the multi-collection envelope: one key per requested entity
// type, each independently paginated by the same page/limit. The pagination
// block describes the aggregate of the returned slices, not the full match
// counts.
type Result struct {
	Query      string               `json:"query"`
	Type       string               `json:"type"`
	Results    map[string]any       `json:"results"`
	Pagination listquery.Pagination `json:"pagination"`
}

type Service interface {
	Search(ctx context.Context, q listquery.Query) (*Result, error)
}

type service struct {
	posts  PostSource
	users  UserSource
	topics TopicSource
}

func NewService(p PostSource, u UserSource, t TopicSource) Service {
	return &service{posts: p, users: u, topics: t}
}

func (s *service) Search(ctx context.Context, q listquery.Query) (*Result, error) {
	res := &Result{Query: q.Text, Type: q.Mode, Results: map[string]any{}}
	total := 0

	if q.Mode == "posts" || q.Mode == "all" {
		all, err := s.posts.List(ctx)
		if err != nil {
			return nil, err
		}
		matched := listquery.Filter(all, func(p post.Post) bool {
			return listquery.MatchFold(q.Text, p.Content, p.Author.Username, p.Author.DisplayName)
		})
		items, _ := listquery.Paginate(matched, q.Page, q.Limit)
		res.Results["posts"] = items
		total += len(items)
	}

	if q.Mode == "users" || q.Mode == "all" {
		all, err := s.users.List(ctx)
		if err != nil {
			return nil, err
		}
		matched := listquery.Filter(all, func(u user.User) bool {
			return listquery.MatchFold(q.Text, u.Username, u.DisplayName, u.Bio)
		})
		items, _ := listquery.Paginate(matched, q.Page, q.Limit)
		res.Results["users"] = items
		total += len(items)
	}

	if q.Mode == "topics" || q.Mode == "all" {
		all, err := s.topics.ListForSearch(ctx)
		if err != nil {
			return nil, err
		}
		matched := listquery.Filter(all, func(t topic.Topic) bool {
			return listquery.MatchFold(q.Text, t.Tag)
		})
		items, _ := listquery.Paginate(matched, q.Page, q.Limit)
		res.Results["topics"] = items
		total += len(items)
	}

	res.Pagination = listquery.Pagination{
		CurrentPage:     q.Page,
		TotalPages:      (total + q.Limit - 1) / q.Limit,
		TotalCount:      total,
		HasNextPage:     q.Page*q.Limit < total,
		HasPreviousPage: q.Page > 1,
	}
	return res, nil
}
