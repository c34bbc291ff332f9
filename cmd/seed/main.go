package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"social-service/configs"
	"social-service/internal/comment"
	"social-service/internal/like"
	"social-service/internal/migrate"
	"social-service/internal/post"
	"social-service/internal/shared/db"
	"social-service/internal/topic"
	"social-service/internal/user"
)

// Seeds the database with demo users, posts, comments, likes, follows and
// trending topic lists so the API has something to serve out of the box.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	cfg := configs.LoadConfig()
	store := db.Open(cfg.DSN())
	ctx := context.Background()

	if err := migrate.AutoMigrateAll(store); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := user.NewRepository(store)
	postRepo := post.NewRepository(store)
	commentRepo := comment.NewRepository(store, nil)
	likeRepo := like.NewRepository(store, nil)
	topicRepo := topic.NewRepository(store)

	users := seedUsers(ctx, userRepo, 25)
	posts := seedPosts(ctx, postRepo, userRepo, users, 120)
	seedComments(ctx, commentRepo, postRepo, users, posts)
	seedLikes(ctx, likeRepo, users, posts)
	seedFollows(ctx, userRepo, users)
	seedTopics(ctx, topicRepo)

	log.Printf("seeded %d users, %d posts", len(users), len(posts))
}

func walletAddress() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 40)
	for i := range b {
		b[i] = hex[rand.Intn(len(hex))]
	}
	return "0x" + string(b)
}

func seedUsers(ctx context.Context, repo user.Repository, n int) []user.User {
	out := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		u := user.User{
			Address:     walletAddress(),
			Username:    gofakeit.Username(),
			DisplayName: gofakeit.Name(),
			Bio:         gofakeit.Sentence(8),
			Avatar:      gofakeit.ImageURL(100, 100),
			CoverImage:  gofakeit.ImageURL(1000, 300),
		}
		if err := repo.Create(ctx, &u); err != nil {
			log.Fatalf("seed user: %v", err)
		}
		out = append(out, u)
	}
	return out
}

var tagPool = []string{
	"web3", "defi", "nft", "blockchain", "crypto", "base",
	"ethereum", "web3social", "dao", "metaverse",
}

func seedPosts(ctx context.Context, repo post.Repository, users user.Repository, us []user.User, n int) []post.Post {
	out := make([]post.Post, 0, n)
	svc := post.NewService(repo, users, nil)
	for i := 0; i < n; i++ {
		u := us[rand.Intn(len(us))]
		tags := []string{tagPool[rand.Intn(len(tagPool))]}
		p, err := svc.Create(ctx, u.Address, post.CreateReq{
			Content: gofakeit.Sentence(12) + " #" + tags[0],
			Tags:    tags,
		})
		if err != nil {
			log.Fatalf("seed post: %v", err)
		}
		out = append(out, *p)
	}
	return out
}

func seedComments(ctx context.Context, repo comment.Repository, posts post.Repository, us []user.User, ps []post.Post) {
	svc := comment.NewService(repo, posts, userLookup(us))
	for _, p := range ps {
		for i := 0; i < rand.Intn(4); i++ {
			u := us[rand.Intn(len(us))]
			c, err := svc.Create(ctx, u.Address, p.ID, comment.CreateReq{
				Content: gofakeit.Sentence(6),
			})
			if err != nil {
				log.Fatalf("seed comment: %v", err)
			}
			if rand.Intn(3) == 0 {
				r := us[rand.Intn(len(us))]
				if _, err := svc.Create(ctx, r.Address, p.ID, comment.CreateReq{
					Content:         gofakeit.Sentence(5),
					ParentCommentID: &c.ID,
				}); err != nil {
					log.Fatalf("seed reply: %v", err)
				}
			}
		}
	}
}

func seedLikes(ctx context.Context, repo like.Repository, us []user.User, ps []post.Post) {
	for _, p := range ps {
		for i := 0; i < rand.Intn(8); i++ {
			u := us[rand.Intn(len(us))]
			if _, err := repo.Like(ctx, u.Address, p.ID); err != nil {
				log.Fatalf("seed like: %v", err)
			}
		}
	}
}

func seedFollows(ctx context.Context, repo user.Repository, us []user.User) {
	for _, u := range us {
		for i := 0; i < rand.Intn(6); i++ {
			t := us[rand.Intn(len(us))]
			if t.Address == u.Address {
				continue
			}
			if _, err := repo.Follow(ctx, u.Address, t.Address); err != nil {
				log.Fatalf("seed follow: %v", err)
			}
		}
	}
}

func seedTopics(ctx context.Context, repo topic.Repository) {
	scale := map[string]int64{"day": 1, "week": 7, "month": 30}
	for tf, mult := range scale {
		topics := make([]topic.Topic, 0, len(tagPool))
		for _, tag := range tagPool {
			topics = append(topics, topic.Topic{
				Tag:       tag,
				PostCount: int64(gofakeit.Number(100, 1500)) * mult,
				Trend:     fmt.Sprintf("%+d%%", gofakeit.Number(-15, 40)),
			})
		}
		if err := repo.Replace(ctx, tf, topics); err != nil {
			log.Fatalf("seed topics: %v", err)
		}
	}
}

// userLookup adapts the already-created users so the comment service can
// snapshot authors without extra queries.
type userLookup []user.User

func (l userLookup) GetByAddress(_ context.Context, address string) (*user.User, error) {
	for i := range l {
		if l[i].Address == address {
			return &l[i], nil
		}
	}
	return nil, fmt.Errorf("user %s not seeded", address)
}
