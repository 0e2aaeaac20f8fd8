package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wellness_backend/internal/feature/tracking/usecase"
)

// goalSourceMySQL reads a user's current goals from the users table. Only the
// goal columns are selected; the tracking feature has no business with the
// rest of the user row.
type goalSourceMySQL struct {
	db *gorm.DB
}

// Compile-time check that goalSourceMySQL implements GoalSource.
var _ usecase.GoalSource = (*goalSourceMySQL)(nil)

// NewGoalSourceMySQL creates a new goalSourceMySQL instance.
func NewGoalSourceMySQL(db *gorm.DB) *goalSourceMySQL {
	return &goalSourceMySQL{db: db}
}

// CurrentGoals returns the user's goals, or usecase.ErrUserNotFound.
func (r *goalSourceMySQL) CurrentGoals(ctx context.Context, userID uint) (usecase.Goals, error) {
	var row struct {
		WaterGoalML    int
		FoodGoalCal    int
		SleepGoalHours float64
	}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("water_goal_ml", "food_goal_cal", "sleep_goal_hours").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Goals{}, usecase.ErrUserNotFound
		}
		return usecase.Goals{}, err
	}
	return usecase.Goals{
		WaterML:    row.WaterGoalML,
		FoodCal:    row.FoodGoalCal,
		SleepHours: row.SleepGoalHours,
	}, nil
}
