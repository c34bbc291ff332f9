package post

import (
	"time"

	"github.com/lib/pq"
)

// Author is a denormalized snapshot of the creator taken at write time, the
// same shape every post and comment carries on the wire.
type Author struct {
	Address     string `gorm:"column:address;size:64;index" json:"address"`
	Username    string `gorm:"column:username;size:120" json:"username"`
	DisplayName string `gorm:"column:display_name;size:200" json:"displayName"`
	Avatar      string `gorm:"column:avatar;size:512" json:"avatar"`
}

// OnchainRef anchors a post to the transaction that recorded it.
type OnchainRef struct {
	TransactionHash string `gorm:"column:tx_hash;size:80" json:"transactionHash"`
	BlockNumber     uint64 `gorm:"column:block_number" json:"blockNumber"`
}

type Post struct {
	ID            string         `gorm:"primaryKey;size:64" json:"id"`
	Author        Author         `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Content       string         `gorm:"type:text" json:"content"`
	Media         pq.StringArray `gorm:"type:text[]" json:"media"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	LikesCount    int64          `json:"likesCount"`
	CommentsCount int64          `json:"commentsCount"`
	RepostsCount  int64          `json:"repostsCount"`
	Onchain       OnchainRef     `gorm:"embedded" json:"onchainReference"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"-"`
}
