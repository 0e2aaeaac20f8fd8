package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "session", repo.prefix)
}

func TestSessionRedis_Create(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		wantErr bool
	}{
		{
			name:    "success: create session",
			session: createTestSession("session-001", 1, 7*24*time.Hour),
			wantErr: false,
		},
		{
			name:    "failure: expired session",
			session: createTestSession("expired-session", 1, -1*time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mr := setupTestRedis(t)
			repo := NewSessionRedis(client, "session")

			err := repo.Create(context.Background(), tt.session)

			if tt.wantErr {
				assert.Error(t, err, "should return error")
				return
			}
			require.NoError(t, err, "failed to create session")
			assert.True(t, mr.Exists("session:"+tt.session.ID), "session key not stored")
			members, _ := mr.SMembers("session:user:1")
			assert.Contains(t, members, tt.session.ID, "session not added to user set")
		})
	}
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", 1, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		found, err := repo.FindByID(context.Background(), "session-001")
		require.NoError(t, err, "failed to find session")
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.UserID, found.UserID)
		assert.Equal(t, session.UserAgent, found.UserAgent)
		assert.True(t, found.IsValid(), "session should be valid")
	})

	t.Run("unknown token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		found, err := repo.FindByID(context.Background(), "no-such-token")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("expired key", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", 1, time.Minute)
		require.NoError(t, repo.Create(context.Background(), session))

		mr.FastForward(2 * time.Minute)

		_, err := repo.FindByID(context.Background(), "session-001")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "expired session should be gone")
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Run("marks the session revoked and keeps the entry", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("session-001", 1, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		require.NoError(t, repo.Revoke(context.Background(), "session-001"))

		found, err := repo.FindByID(context.Background(), "session-001")
		require.NoError(t, err, "revoked session should still be readable")
		assert.True(t, found.IsRevoked(), "session should be revoked")
		assert.False(t, found.IsValid(), "revoked session is not valid")
	})

	t.Run("unknown token returns ErrSessionNotFound", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		err := repo.Revoke(context.Background(), "no-such-token")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_RevokeAllByUserID(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	require.NoError(t, repo.Create(context.Background(), createTestSession("user1-a", 1, time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("user1-b", 1, time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("user2-a", 2, time.Hour)))

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

func TestSessionRedis_CountByUserID(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	require.NoError(t, repo.Create(context.Background(), createTestSession("active-1", 1, time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("active-2", 1, time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("short-lived", 1, time.Minute)))
	require.NoError(t, repo.Create(context.Background(), createTestSession("revoked", 1, time.Hour)))
	require.NoError(t, repo.Revoke(context.Background(), "revoked"))

	// Expire the short-lived session; its set member becomes stale.
	mr.FastForward(2 * time.Minute)

	count, err := repo.CountByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "only active unexpired sessions should count")
}

func TestSessionRedis_DeleteOldestByUserID(t *testing.T) {
	t.Run("removes the oldest active session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		oldest := createTestSession("oldest", 1, time.Hour)
		oldest.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.Create(context.Background(), oldest))
		require.NoError(t, repo.Create(context.Background(), createTestSession("newest", 1, time.Hour)))

		require.NoError(t, repo.DeleteOldestByUserID(context.Background(), 1))

		_, err := repo.FindByID(context.Background(), "oldest")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "oldest session should be deleted")

		_, err = repo.FindByID(context.Background(), "newest")
		assert.NoError(t, err, "newest session should remain")
	})

	t.Run("no active sessions is a no-op", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		err := repo.DeleteOldestByUserID(context.Background(), 1)

		assert.NoError(t, err)
	})
}
