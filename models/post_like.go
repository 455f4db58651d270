package models

import (
	"time"
)

// PostLike marks that a profile likes a post; existence of the row is the
// state. The composite unique index keeps the pair to at most one row, which
// the toggle's delete-first transaction relies on.
type PostLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_once" json:"postId"`
	ProfileID uint      `gorm:"not null;uniqueIndex:idx_post_like_once" json:"profileId"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
}
