package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a shared, feed-visible meal record. The author fields are a
// snapshot taken at post time and are deliberately not kept in sync with
// later profile edits.
type Post struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null" json:"user_id"`
	AuthorName     string `json:"author_name"`
	AuthorUsername string `json:"author_username"`
	AuthorPicture  string `json:"author_picture"`

	ImageURL string  `json:"image"`
	FoodName string  `json:"food_name"`
	Caption  string  `json:"caption"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	// CommentCount has no write path yet; comments are a UI affordance
	// without a backing contract.
	CommentCount int `json:"comments"`

	// Computed from post_likes at read time; not persisted. Like state is
	// solely the set of liker ids.
	LikerIDs  []uint `gorm:"-" json:"likes"`
	LikeCount int    `gorm:"-" json:"like_count"`
	Liked     bool   `gorm:"-" json:"liked"`
}

// PostLike is set membership for likes. The (post_id, user_id) pair is
// unique, which makes a double-tap "add" idempotent.
type PostLike struct {
	ID        uint `gorm:"primaryKey"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_post_user"`
	CreatedAt time.Time
}
