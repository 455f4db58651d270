package models

import (
	"time"
)

// PostComment forms a reply tree per post. A nil ParentID marks a top-level
// comment; replies carry the id of the comment they answer.
type PostComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	ProfileID uint      `gorm:"not null" json:"profileId"`
	Profile   Profile   `gorm:"foreignKey:ProfileID" json:"profile"`
	ParentID  *uint     `gorm:"index" json:"parentId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
