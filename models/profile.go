package models

import (
	"time"
)

// Profile is the user-facing identity that posts, likes and comments reference.
// Account records and token issuance live in the external accounts service;
// rows here are provisioned by it.
type Profile struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	DisplayName string    `gorm:"size:120" json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
