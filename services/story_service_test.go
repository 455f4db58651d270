package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glimpse-social/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStory(t *testing.T) {
	db := newTestDB(t)
	store := newFakeStore()
	svc := NewStoryService(db, store)
	profile := createProfile(t, db, "poster")

	t.Run("stores file and sets expiry", func(t *testing.T) {
		story, err := svc.Create(context.Background(), profile.ID, MediaUpload{
			FileName:    "day.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("snapshot"),
		})
		require.NoError(t, err)
		assert.True(t, story.IsLive())
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), story.ExpireAt, time.Minute)
		assert.Len(t, store.objects, 1)
	})

	t.Run("rejects empty upload", func(t *testing.T) {
		_, err := svc.Create(context.Background(), profile.ID, MediaUpload{})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestListLiveStories(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db, newFakeStore())
	profile := createProfile(t, db, "poster")

	live, err := svc.Create(context.Background(), profile.ID, MediaUpload{
		FileName:    "live.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("live"),
	})
	require.NoError(t, err)

	expired := models.Story{
		ProfileID: profile.ID,
		FileKey:   "story_media/old",
		FileURL:   "https://media.test/story_media/old",
		ExpireAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	stories, err := svc.ListLive()
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, live.ID, stories[0].ID)
}

func TestViewStory(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db, newFakeStore())
	poster := createProfile(t, db, "poster")
	viewer := createProfile(t, db, "viewer")

	story, err := svc.Create(context.Background(), poster.ID, MediaUpload{
		FileName:    "day.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("snapshot"),
	})
	require.NoError(t, err)

	t.Run("records a view", func(t *testing.T) {
		require.NoError(t, svc.View(story.ID, viewer.ID))

		var count int64
		db.Model(&models.StoryView{}).Where("story_id = ?", story.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("expired story is gone", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Story{}).Where("id = ?", story.ID).
			Update("expire_at", time.Now().Add(-time.Minute)).Error)

		err := svc.View(story.ID, viewer.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing story is not found", func(t *testing.T) {
		err := svc.View(9999, viewer.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
