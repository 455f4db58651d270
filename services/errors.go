package services

import (
	"errors"
	"fmt"

	"github.com/glimpse-social/api-go/models"
	"gorm.io/gorm"
)

// Sentinel errors the controllers branch on with errors.Is. Anything not
// wrapping one of these is an internal error.
var (
	ErrNotFound   = errors.New("not found")
	ErrInvalid    = errors.New("invalid input")
	ErrNotAllowed = errors.New("not allowed")
)

// postExists is the safe-lookup shared by every component that takes a
// caller-supplied post id.
func postExists(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}
