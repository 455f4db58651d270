package services

import (
	"errors"
	"fmt"

	"github.com/glimpse-social/api-go/models"
	"gorm.io/gorm"
)

// LikeAction is the outcome of a toggle.
type LikeAction string

const (
	LikeAdded   LikeAction = "Added"
	LikeRemoved LikeAction = "Removed"
)

type LikeService struct {
	DB *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{DB: db}
}

// Toggle flips the like state for (post, profile): a present row is deleted,
// an absent one created. Delete-first inside the transaction; the unique index
// on (post_id, profile_id) turns a concurrent double-add into a constraint
// error instead of a second row.
func (s *LikeService) Toggle(postID, profileID uint) (LikeAction, error) {
	if err := postExists(s.DB, postID); err != nil {
		return "", err
	}

	var action LikeAction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND profile_id = ?", postID, profileID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			action = LikeRemoved
			return nil
		}

		like := models.PostLike{PostID: postID, ProfileID: profileID}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("concurrent like on post %d by profile %d: %v", postID, profileID, err)
			}
			return err
		}
		action = LikeAdded
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// Count is computed on read, never denormalized onto the post.
func (s *LikeService) Count(postID uint) (int64, error) {
	if err := postExists(s.DB, postID); err != nil {
		return 0, err
	}

	var count int64
	if err := s.DB.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *LikeService) IsLikedBy(postID, profileID uint) (bool, error) {
	if err := postExists(s.DB, postID); err != nil {
		return false, err
	}

	var count int64
	err := s.DB.Model(&models.PostLike{}).
		Where("post_id = ? AND profile_id = ?", postID, profileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListLikes returns the like rows for a post with their profiles loaded.
func (s *LikeService) ListLikes(postID uint) ([]models.PostLike, error) {
	if err := postExists(s.DB, postID); err != nil {
		return nil, err
	}

	var likes []models.PostLike
	err := s.DB.Preload("Profile").
		Where("post_id = ?", postID).
		Order("created_at").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
