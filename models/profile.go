package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the social-facing user record. One per User, created lazily on
// first sign-in if the signup write never landed.
type Profile struct {
	gorm.Model  `json:"-"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"id"`
	DisplayName string    `json:"display_name"`
	Username    string    `gorm:"index" json:"username"` // "@" + email local-part
	Email       string    `json:"email"`
	PictureURL  string    `json:"profile_picture"`
	Bio         string    `json:"bio"`
	PostCount   int       `json:"posts"`
	JoinedAt    time.Time `json:"joined_date"`

	// Computed from the follows table at read time; not persisted.
	Followers []uint `gorm:"-" json:"followers"`
	Following []uint `gorm:"-" json:"following"`
}

// Follow is one edge of the social graph. A single row carries both sides of
// the relationship, so follower/following views can never disagree.
type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follower_followee"`
	FolloweeID uint `gorm:"not null;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time
}
