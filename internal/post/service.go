package post

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"

	"social-service/internal/listquery"
	"social-service/internal/shared/apperr"
	"social-service/internal/user"
)

// Filter modes accepted by the posts listing.
var FilterModes = []string{"all", "following", "trending"}

// ProfileSource is the slice of the user repository the post service needs;
// user.Repository satisfies it.
type ProfileSource interface {
	GetByAddress(ctx context.Context, address string) (*user.User, error)
	Following(ctx context.Context, follower string) ([]string, error)
	IncPosts(ctx context.Context, address string, delta int) error
}

// EventWriter publishes post events; pkg/kafka.Writer satisfies it.
type EventWriter interface {
	WriteJSON(ctx context.Context, v any) error
}

type Service interface {
	Create(ctx context.Context, authorAddress string, in CreateReq) (*Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, q listquery.Query, author, viewer string) (listquery.Page[Post], error)
}

type service struct {
	repo     Repository
	profiles ProfileSource
	events   EventWriter
}

func NewService(r Repository, p ProfileSource, ev EventWriter) Service {
	return &service{repo: r, profiles: p, events: ev}
}

func (s *service) Create(ctx context.Context, authorAddress string, in CreateReq) (*Post, error) {
	u, err := s.profiles.GetByAddress(ctx, authorAddress)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &Post{
		ID: "post_" + uuid.NewString(),
		Author: Author{
			Address:     u.Address,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
		},
		Content: in.Content,
		Media:   orEmpty(in.Media),
		Tags:    orEmpty(in.Tags),
		Onchain: OnchainRef{
			TransactionHash: randomTxHash(),
			BlockNumber:     uint64(now.Unix()),
		},
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.profiles.IncPosts(ctx, authorAddress, +1); err != nil {
		log.Printf("posts_count increment for %s: %v", authorAddress, err)
	}
	if s.events != nil {
		ev := Event{
			ID:            p.ID,
			AuthorAddress: p.Author.Address,
			Content:       p.Content,
			Tags:          p.Tags,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		}
		go func() {
			c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.events.WriteJSON(c, ev); err != nil {
				log.Printf("post event publish: %v", err)
			}
		}()
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List runs the list-query pipeline over the post collection: candidate
// selection, author predicate, sort strategy, pagination.
func (s *service) List(ctx context.Context, q listquery.Query, author, viewer string) (listquery.Page[Post], error) {
	var zero listquery.Page[Post]

	var candidates []Post
	var err error
	switch q.Mode {
	case "following":
		if viewer == "" {
			return zero, apperr.Unauthorized()
		}
		var followed []string
		if followed, err = s.profiles.Following(ctx, viewer); err != nil {
			return zero, err
		}
		candidates, err = s.repo.ListByAuthors(ctx, followed)
	default:
		candidates, err = s.repo.List(ctx)
	}
	if err != nil {
		return zero, err
	}

	if author != "" {
		candidates = listquery.Filter(candidates, func(p Post) bool {
			return p.Author.Address == author
		})
	}

	if q.Mode == "trending" {
		candidates = listquery.Sort(candidates, listquery.Popular(
			func(p Post) int64 { return p.LikesCount },
			func(p Post) string { return p.ID },
		))
	}

	items, pg := listquery.Paginate(candidates, q.Page, q.Limit)
	return listquery.NewPage(items, pg), nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func randomTxHash() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return "0x" + hex.EncodeToString(b)
}
