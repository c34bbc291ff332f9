package migrate

import (
	"social-service/internal/comment"
	"social-service/internal/like"
	"social-service/internal/post"
	"social-service/internal/shared/db"
	"social-service/internal/topic"
	"social-service/internal/user"
)

func AutoMigrateAll(s *db.Store) error {
	return s.DB.AutoMigrate(
		&user.User{},
		&user.Follow{},
		&post.Post{},
		&comment.Comment{},
		&like.PostLike{},
		&topic.Topic{},
	)
}
