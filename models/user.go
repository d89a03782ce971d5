package models

import (
	"gorm.io/gorm"
)

// User is the authentication principal. Social and display data lives on Profile.
type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"display_name"`
	PictureURL  string `json:"picture_url"`
}
