package services

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/glimpse-social/api-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{}, &models.Post{}, &models.PostMedia{},
		&models.PostLike{}, &models.PostComment{},
		&models.Story{}, &models.StoryView{},
	))

	return db
}

func createProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()
	profile := &models.Profile{Username: username}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createPost(t *testing.T, db *gorm.DB, profileID uint, caption string) *models.Post {
	t.Helper()
	post := &models.Post{ProfileID: profileID, Caption: caption}
	require.NoError(t, db.Create(post).Error)
	return post
}

// fakeStore is an in-memory MediaStore. failAt > 0 makes the Nth and every
// later Put fail, which is how the rollback tests simulate a rejected blob.
type fakeStore struct {
	objects map[string]string
	puts    int
	failAt  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]string{}}
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.puts++
	if f.failAt > 0 && f.puts >= f.failAt {
		return "", fmt.Errorf("store rejected %s", key)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = string(data)
	return "https://media.test/" + key, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}
