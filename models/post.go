package models

import (
	"time"
)

type Post struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID uint          `gorm:"not null;index" json:"profileId"`
	Profile   Profile       `gorm:"foreignKey:ProfileID" json:"profile"`
	Caption   string        `gorm:"size:120;not null" json:"caption"`
	Media     []PostMedia   `gorm:"foreignKey:PostID" json:"postMedia"`
	Comments  []PostComment `gorm:"foreignKey:PostID" json:"-"`
	Likes     []PostLike    `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
