package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createProfile(t, db, "owner")
	fan := createProfile(t, db, "fan")
	post := createPost(t, db, owner.ID, "caption")

	t.Run("first toggle adds", func(t *testing.T) {
		action, err := svc.Toggle(post.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeAdded, action)

		liked, err := svc.IsLikedBy(post.ID, fan.ID)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("second toggle removes", func(t *testing.T) {
		action, err := svc.Toggle(post.ID, fan.ID)
		require.NoError(t, err)
		assert.Equal(t, LikeRemoved, action)

		liked, err := svc.IsLikedBy(post.ID, fan.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("toggle twice is a net no-op", func(t *testing.T) {
		_, err := svc.Toggle(post.ID, fan.ID)
		require.NoError(t, err)
		_, err = svc.Toggle(post.ID, fan.ID)
		require.NoError(t, err)

		liked, err := svc.IsLikedBy(post.ID, fan.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, err := svc.Toggle(9999, fan.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLikesCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createProfile(t, db, "owner")
	post := createPost(t, db, owner.ID, "caption")

	profiles := []string{"a", "b", "c"}
	for _, name := range profiles {
		p := createProfile(t, db, name)
		_, err := svc.Toggle(post.ID, p.ID)
		require.NoError(t, err)
	}

	count, err := svc.Count(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(profiles), count)

	// Count always matches the number of profiles reporting liked.
	var likedBy int
	for id := uint(1); id <= 10; id++ {
		liked, err := svc.IsLikedBy(post.ID, id)
		require.NoError(t, err)
		if liked {
			likedBy++
		}
	}
	assert.EqualValues(t, count, likedBy)

	t.Run("count on missing post is not found", func(t *testing.T) {
		_, err := svc.Count(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListLikes(t *testing.T) {
	db := newTestDB(t)
	svc := NewLikeService(db)
	owner := createProfile(t, db, "owner")
	fan := createProfile(t, db, "fan")
	post := createPost(t, db, owner.ID, "caption")

	_, err := svc.Toggle(post.ID, fan.ID)
	require.NoError(t, err)

	likes, err := svc.ListLikes(post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "fan", likes[0].Profile.Username)
}
