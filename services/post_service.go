package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/glimpse-social/api-go/models"
	"github.com/glimpse-social/api-go/storage"
	"gorm.io/gorm"
)

const maxCaptionLen = 120

// MediaUpload is one attachment submitted with a new post or story.
type MediaUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

type PostService struct {
	DB    *gorm.DB
	Media storage.MediaStore
}

func NewPostService(db *gorm.DB, media storage.MediaStore) *PostService {
	return &PostService{DB: db, Media: media}
}

// GetPost resolves a caller-supplied id. A missing post is an ordinary
// ErrNotFound branch, not a database error.
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.DB.Preload("Profile").Preload("Media").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.DB.Preload("Profile").Preload("Media").Order("created_at desc, id desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost inserts the post row and all of its media in one transaction.
// Media bytes go to the store before commit so a storage failure still rolls
// the rows back; objects stored before the failure are removed again. Readers
// never observe a post with only part of its media.
func (s *PostService) CreatePost(ctx context.Context, profileID uint, caption string, media []MediaUpload) (*models.Post, error) {
	if err := validateCaption(caption); err != nil {
		return nil, err
	}

	var post models.Post
	var storedKeys []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		post = models.Post{ProfileID: profileID, Caption: caption}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		for _, m := range media {
			if m.Body == nil || m.FileName == "" {
				return fmt.Errorf("%w: media file is empty", ErrInvalid)
			}

			key := storage.NewObjectKey("post_media", m.FileName)
			url, err := s.Media.Put(ctx, key, m.ContentType, m.Body)
			if err != nil {
				return fmt.Errorf("%w: store %s: %v", ErrInvalid, m.FileName, err)
			}
			storedKeys = append(storedKeys, key)

			item := models.PostMedia{
				PostID:      post.ID,
				FileKey:     key,
				FileURL:     url,
				ContentType: m.ContentType,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			post.Media = append(post.Media, item)
		}

		return nil
	})
	if err != nil {
		s.releaseObjects(ctx, storedKeys)
		return nil, err
	}

	return &post, nil
}

// UpdatePost changes the caption. Only the owning profile may update.
func (s *PostService) UpdatePost(id, requesterID uint, caption string) (*models.Post, error) {
	if err := validateCaption(caption); err != nil {
		return nil, err
	}

	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}
	if post.ProfileID != requesterID {
		return nil, fmt.Errorf("post %d belongs to another profile: %w", id, ErrNotAllowed)
	}

	if err := s.DB.Model(post).Update("caption", caption).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and everything hanging off it: media rows,
// likes and the full comment tree, in one transaction. Backing media objects
// are released after commit; a flaky object store cannot block the delete.
func (s *PostService) DeletePost(ctx context.Context, id, requesterID uint) error {
	var mediaKeys []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.First(&post, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		if post.ProfileID != requesterID {
			return fmt.Errorf("post %d belongs to another profile: %w", id, ErrNotAllowed)
		}

		var media []models.PostMedia
		if err := tx.Where("post_id = ?", id).Find(&media).Error; err != nil {
			return err
		}
		for _, m := range media {
			mediaKeys = append(mediaKeys, m.FileKey)
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.PostComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostMedia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return err
	}

	s.releaseObjects(ctx, mediaKeys)
	return nil
}

func (s *PostService) releaseObjects(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Media.Delete(ctx, key); err != nil {
			log.Printf("failed to release media object %s: %v", key, err)
		}
	}
}

func validateCaption(caption string) error {
	if strings.TrimSpace(caption) == "" {
		return fmt.Errorf("%w: caption cannot be empty", ErrInvalid)
	}
	if len(caption) > maxCaptionLen {
		return fmt.Errorf("%w: caption is too long (maximum %d characters)", ErrInvalid, maxCaptionLen)
	}
	return nil
}
