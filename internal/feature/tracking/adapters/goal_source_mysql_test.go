package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/tracking/usecase"
)

func TestGoalSourceMySQL_CurrentGoals(t *testing.T) {
	t.Run("reads the goal columns from the users table", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.AutoMigrate(&authentity.User{}))

		user := &authentity.User{
			Email:          "goals@example.com",
			Password:       "hash",
			WaterGoalML:    2500,
			FoodGoalCal:    1800,
			SleepGoalHours: 7.5,
		}
		require.NoError(t, db.Create(user).Error)

		source := NewGoalSourceMySQL(db)
		goals, err := source.CurrentGoals(context.Background(), user.ID)

		require.NoError(t, err, "failed to read goals")
		assert.Equal(t, usecase.Goals{WaterML: 2500, FoodCal: 1800, SleepHours: 7.5}, goals)
	})

	t.Run("unknown user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.AutoMigrate(&authentity.User{}))

		source := NewGoalSourceMySQL(db)
		_, err := source.CurrentGoals(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}
