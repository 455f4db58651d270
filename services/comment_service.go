package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glimpse-social/api-go/models"
	"gorm.io/gorm"
)

type CommentService struct {
	DB *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

// Create validates and inserts a comment. A parent, when given, must exist and
// belong to the same post; a parent on another post is treated the same as a
// missing one.
func (s *CommentService) Create(postID, profileID uint, content string, parentID *uint) (*models.PostComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrInvalid)
	}
	if err := postExists(s.DB, postID); err != nil {
		return nil, err
	}

	if parentID != nil {
		var parent models.PostComment
		err := s.DB.First(&parent, *parentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && parent.PostID != postID) {
			return nil, fmt.Errorf("parent comment %d: %w", *parentID, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
	}

	comment := models.PostComment{
		PostID:    postID,
		ProfileID: profileID,
		ParentID:  parentID,
		Content:   content,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Preload("Profile").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// TopLevel returns the parentless comments on a post in creation order. The
// serializer walks their subtrees through Children.
func (s *CommentService) TopLevel(postID uint) ([]models.PostComment, error) {
	if err := postExists(s.DB, postID); err != nil {
		return nil, err
	}

	var comments []models.PostComment
	err := s.DB.Preload("Profile").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at, id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Children returns the direct replies of a comment, not the full subtree.
func (s *CommentService) Children(commentID uint) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := s.DB.Preload("Profile").
		Where("parent_id = ?", commentID).
		Order("created_at, id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete hard-deletes a comment and its whole reply subtree. The requester
// must own the post or have authored the comment. A concurrent second delete
// observes ErrNotFound.
func (s *CommentService) Delete(postID, commentID, requesterID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.First(&post, postID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var comment models.PostComment
		err = tx.First(&comment, commentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && comment.PostID != postID) {
			return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		if post.ProfileID != requesterID && comment.ProfileID != requesterID {
			return fmt.Errorf("comment %d: %w", commentID, ErrNotAllowed)
		}

		// Walk the subtree level by level; depth is unbounded.
		ids := []uint{comment.ID}
		frontier := []uint{comment.ID}
		for len(frontier) > 0 {
			var children []uint
			err := tx.Model(&models.PostComment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		return tx.Where("id IN ?", ids).Delete(&models.PostComment{}).Error
	})
}
