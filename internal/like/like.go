package like

import "time"

type PostLike struct {
	PostID      string `gorm:"primaryKey;size:64"`
	UserAddress string `gorm:"primaryKey;size:64"`
	CreatedAt   time.Time
}
