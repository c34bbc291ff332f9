package comment

import "time"

type Author struct {
	Address     string `gorm:"column:address;size:64;index" json:"address"`
	Username    string `gorm:"column:username;size:120" json:"username"`
	DisplayName string `gorm:"column:display_name;size:200" json:"displayName"`
	Avatar      string `gorm:"column:avatar;size:512" json:"avatar"`
}

// Comment supports one level of threading: a reply points at a top-level
// comment through ParentID and is carried in its parent's Replies list.
type Comment struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	PostID     string    `gorm:"size:64;index" json:"postId"`
	ParentID   *string   `gorm:"size:64;index" json:"parentCommentId"`
	Author     Author    `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Content    string    `gorm:"type:text" json:"content"`
	LikesCount int64     `json:"likesCount"`
	CreatedAt  time.Time `json:"createdAt"`
	Replies    []Comment `gorm:"-" json:"replies"`
}

type CreateReq struct {
	Content         string  `json:"content" validate:"required"`
	ParentCommentID *string `json:"parentCommentId"`
}
