package models

import (
	"time"
)

// PostMedia is one stored attachment on a post. FileKey is the object key in
// the media store, FileURL the public URL it resolves to.
type PostMedia struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID      uint      `gorm:"not null;index" json:"postId"`
	FileKey     string    `gorm:"size:255;not null" json:"-"`
	FileURL     string    `gorm:"not null" json:"file"`
	ContentType string    `gorm:"size:100" json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}
