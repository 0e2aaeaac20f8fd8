package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing. Error
// translation is enabled to match the production connection, so duplicate-key
// failures surface as gorm.ErrDuplicatedKey on both drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Name:     "Taro",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Email: "duplicate@example.com", Password: "password1"}
		err := repo.Create(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		user2 := &entity.User{Email: "duplicate@example.com", Password: "password2"}
		err = repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{Email: "find@example.com", Password: "hashed_password"}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{Email: "findbyid@example.com", Password: "hashed_password"}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_SetResetCode(t *testing.T) {
	t.Run("stores code and expiry", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{Email: "reset@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), user))

		expiry := time.Now().Add(15 * time.Minute)
		err := repo.SetResetCode(context.Background(), user.ID, "123456", expiry)
		require.NoError(t, err, "failed to set reset code")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.ResetCode, "reset code not stored")
		assert.Equal(t, "123456", *found.ResetCode, "code does not match")
		require.NotNil(t, found.ResetCodeExpiry, "expiry not stored")
		assert.WithinDuration(t, expiry, *found.ResetCodeExpiry, time.Second, "expiry does not match")
	})

	t.Run("a new code replaces the old one", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{Email: "replace@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), user))

		require.NoError(t, repo.SetResetCode(context.Background(), user.ID, "111111", time.Now().Add(time.Minute)))
		require.NoError(t, repo.SetResetCode(context.Background(), user.ID, "222222", time.Now().Add(time.Minute)))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "222222", *found.ResetCode, "new code should replace the old one")
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.SetResetCode(context.Background(), 999, "123456", time.Now())

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_UpdatePassword(t *testing.T) {
	t.Run("replaces the hash and clears the reset code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{Email: "update@example.com", Password: "old_hash"}
		require.NoError(t, repo.Create(context.Background(), user))
		require.NoError(t, repo.SetResetCode(context.Background(), user.ID, "123456", time.Now().Add(time.Minute)))

		err := repo.UpdatePassword(context.Background(), user.ID, "new_hash")
		require.NoError(t, err, "failed to update password")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new_hash", found.Password, "password hash not updated")
		assert.Nil(t, found.ResetCode, "reset code should be cleared")
		assert.Nil(t, found.ResetCodeExpiry, "reset code expiry should be cleared")
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.UpdatePassword(context.Background(), 999, "hash")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}
