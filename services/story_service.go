package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glimpse-social/api-go/models"
	"github.com/glimpse-social/api-go/storage"
	"gorm.io/gorm"
)

// Stories disappear from every read path once expired.
const storyTTL = 24 * time.Hour

type StoryService struct {
	DB    *gorm.DB
	Media storage.MediaStore
}

func NewStoryService(db *gorm.DB, media storage.MediaStore) *StoryService {
	return &StoryService{DB: db, Media: media}
}

// Create stores the file and inserts the story in one transaction, same
// rollback contract as post creation.
func (s *StoryService) Create(ctx context.Context, profileID uint, upload MediaUpload) (*models.Story, error) {
	if upload.Body == nil || upload.FileName == "" {
		return nil, fmt.Errorf("%w: story file is empty", ErrInvalid)
	}

	var story models.Story
	var storedKey string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		key := storage.NewObjectKey("story_media", upload.FileName)
		url, err := s.Media.Put(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			return fmt.Errorf("%w: store %s: %v", ErrInvalid, upload.FileName, err)
		}
		storedKey = key

		story = models.Story{
			ProfileID: profileID,
			FileKey:   key,
			FileURL:   url,
			ExpireAt:  time.Now().Add(storyTTL),
		}
		return tx.Create(&story).Error
	})
	if err != nil {
		if storedKey != "" {
			s.Media.Delete(ctx, storedKey)
		}
		return nil, err
	}

	return &story, nil
}

// ListLive returns the stories that have not expired yet, newest first.
func (s *StoryService) ListLive() ([]models.Story, error) {
	var stories []models.Story
	err := s.DB.Preload("Profile").
		Where("expire_at > ?", time.Now()).
		Order("created_at desc, id desc").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// View records that a profile has seen a story. Expired stories behave as if
// they were gone.
func (s *StoryService) View(storyID, viewerID uint) error {
	var story models.Story
	err := s.DB.First(&story, storyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("story %d: %w", storyID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !story.IsLive() {
		return fmt.Errorf("story %d has expired: %w", storyID, ErrNotFound)
	}

	view := models.StoryView{StoryID: story.ID, ViewerID: viewerID}
	return s.DB.Create(&view).Error
}
