package models

import (
	"time"
)

// Story is an ephemeral media post that disappears after ExpireAt.
type Story struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profileId"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile"`
	FileKey   string    `gorm:"size:255;not null" json:"-"`
	FileURL   string    `gorm:"not null" json:"file"`
	ExpireAt  time.Time `gorm:"not null;index" json:"expireAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsLive reports whether the story is still visible.
func (s *Story) IsLive() bool {
	return time.Now().Before(s.ExpireAt)
}

// StoryView records that a profile has seen a story.
type StoryView struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID   uint      `gorm:"not null;index" json:"storyId"`
	ViewerID  uint      `gorm:"not null" json:"viewerId"`
	Viewer    Profile   `gorm:"foreignKey:ViewerID" json:"viewer"`
	CreatedAt time.Time `json:"createdAt"`
}
