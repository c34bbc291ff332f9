package user

import "time"

// User is keyed by wallet address.
type User struct {
	Address        string    `gorm:"primaryKey;size:64" json:"address"`
	Username       string    `gorm:"size:120;index" json:"username"`
	DisplayName    string    `gorm:"size:200" json:"displayName"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Avatar         string    `gorm:"size:512" json:"avatar"`
	CoverImage     string    `gorm:"size:512" json:"coverImage"`
	FollowersCount int64     `json:"followersCount"`
	FollowingCount int64     `json:"followingCount"`
	PostsCount     int64     `json:"postsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Follow struct {
	FollowerAddress string `gorm:"primaryKey;size:64"`
	FolloweeAddress string `gorm:"primaryKey;size:64;index"`
	CreatedAt       time.Time
}

// UpdateReq carries a shallow profile merge: only non-nil fields are written.
type UpdateReq struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
	CoverImage  *string `json:"coverImage"`
}
