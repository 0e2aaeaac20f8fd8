// Package adapters provides repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wellness_backend/internal/feature/auth/domain/entity"
	"wellness_backend/internal/feature/profile/usecase"
)

// userMySQL implements the profile UserRepository over the shared users table.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check that userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL instance with the given gorm.DB handle.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// FindByID retrieves a user by ID, or usecase.ErrUserNotFound.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the updated user.
func (r *userMySQL) UpdateProfile(ctx context.Context, id uint, upd usecase.ProfileUpdate) (*entity.User, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Age != nil {
		updates["age"] = *upd.Age
	}
	if upd.Weight != nil {
		updates["weight"] = *upd.Weight
	}
	if upd.Height != nil {
		updates["height"] = *upd.Height
	}
	return r.apply(ctx, id, updates)
}

// UpdateGoals applies the non-nil fields of upd and returns the updated user.
func (r *userMySQL) UpdateGoals(ctx context.Context, id uint, upd usecase.GoalsUpdate) (*entity.User, error) {
	updates := map[string]interface{}{}
	if upd.WaterML != nil {
		updates["water_goal_ml"] = *upd.WaterML
	}
	if upd.FoodCal != nil {
		updates["food_goal_cal"] = *upd.FoodCal
	}
	if upd.SleepHours != nil {
		updates["sleep_goal_hours"] = *upd.SleepHours
	}
	return r.apply(ctx, id, updates)
}

// apply writes the collected column updates, then re-reads the row. The
// re-read doubles as the existence check for an empty update.
func (r *userMySQL) apply(ctx context.Context, id uint, updates map[string]interface{}) (*entity.User, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&entity.User{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return r.FindByID(ctx, id)
}
