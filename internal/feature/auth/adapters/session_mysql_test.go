package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/auth/usecase"
)

func newTestSession(id string, userID uint) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionMySQL_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	session := newTestSession("token-1", 1)
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByID(context.Background(), "token-1")
	require.NoError(t, err, "failed to find session")
	assert.Equal(t, session.ID, found.ID, "ID does not match")
	assert.Equal(t, session.UserID, found.UserID, "UserID does not match")
	assert.Equal(t, session.UserAgent, found.UserAgent, "UserAgent does not match")
	assert.True(t, found.IsValid(), "session should be valid")
}

func TestSessionMySQL_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	found, err := repo.FindByID(context.Background(), "no-such-token")

	assert.Nil(t, found, "session should be nil")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "should return ErrSessionNotFound")
}

func TestSessionMySQL_Revoke(t *testing.T) {
	t.Run("marks the session revoked", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		require.NoError(t, repo.Create(context.Background(), newTestSession("token-1", 1)))
		require.NoError(t, repo.Revoke(context.Background(), "token-1"))

		found, err := repo.FindByID(context.Background(), "token-1")
		require.NoError(t, err)
		assert.True(t, found.IsRevoked(), "session should be revoked")
	})

	t.Run("unknown session returns ErrSessionNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		err := repo.Revoke(context.Background(), "no-such-token")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "should return ErrSessionNotFound")
	})
}

func TestSessionMySQL_RevokeAllByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	require.NoError(t, repo.Create(context.Background(), newTestSession("user1-a", 1)))
	require.NoError(t, repo.Create(context.Background(), newTestSession("user1-b", 1)))
	require.NoError(t, repo.Create(context.Background(), newTestSession("user2-a", 2)))

	require.NoError(t, repo.RevokeAllByUserID(context.Background(), 1))

	for _, id := range []string{"user1-a", "user1-b"} {
		found, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, found.IsRevoked(), "session %s should be revoked", id)
	}

	other, err := repo.FindByID(context.Background(), "user2-a")
	require.NoError(t, err)
	assert.False(t, other.IsRevoked(), "other user's session should stay active")
}

func TestSessionMySQL_CountByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionMySQL(db)

	require.NoError(t, repo.Create(context.Background(), newTestSession("active-1", 1)))
	require.NoError(t, repo.Create(context.Background(), newTestSession("active-2", 1)))

	expired := newTestSession("expired", 1)
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(context.Background(), expired))

	require.NoError(t, repo.Create(context.Background(), newTestSession("revoked", 1)))
	require.NoError(t, repo.Revoke(context.Background(), "revoked"))

	count, err := repo.CountByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "only active unexpired sessions should count")
}

func TestSessionMySQL_DeleteOldestByUserID(t *testing.T) {
	t.Run("removes the oldest active session", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		oldest := newTestSession("oldest", 1)
		oldest.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.Create(context.Background(), oldest))
		require.NoError(t, repo.Create(context.Background(), newTestSession("newest", 1)))

		require.NoError(t, repo.DeleteOldestByUserID(context.Background(), 1))

		_, err := repo.FindByID(context.Background(), "oldest")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "oldest session should be deleted")

		_, err = repo.FindByID(context.Background(), "newest")
		assert.NoError(t, err, "newest session should remain")
	})

	t.Run("no active sessions is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionMySQL(db)

		err := repo.DeleteOldestByUserID(context.Background(), 1)

		assert.NoError(t, err, "should not fail when the user has no sessions")
	})
}
