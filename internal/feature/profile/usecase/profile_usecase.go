// Package usecase implements the profile and goal management logic.
package usecase

import (
	"context"
	"errors"

	"wellness_backend/internal/feature/auth/domain/entity"
)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched; only supplied fields are applied.
type ProfileUpdate struct {
	Name   *string
	Age    *int
	Weight *float64
	Height *float64
}

// GoalsUpdate carries a partial goals change. Each goal can be updated
// independently; nil fields are left untouched.
type GoalsUpdate struct {
	WaterML    *int
	FoodCal    *int
	SleepHours *float64
}

// UserRepository abstracts the persistence layer for profile operations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of upd and returns the
	// updated user.
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*entity.User, error)

	// UpdateGoals applies the non-nil fields of upd and returns the
	// updated user.
	UpdateGoals(ctx context.Context, id uint, upd GoalsUpdate) (*entity.User, error)
}

// profileUsecase is a thin pass-through over the repository; bounds
// validation happens at the transport boundary.
type profileUsecase struct {
	users UserRepository
}

// NewProfileUsecase creates a new profileUsecase.
func NewProfileUsecase(users UserRepository) *profileUsecase {
	return &profileUsecase{users: users}
}

// Get returns the user's profile.
func (u *profileUsecase) Get(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile applies a partial profile update.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*entity.User, error) {
	return u.users.UpdateProfile(ctx, userID, upd)
}

// UpdateGoals applies a partial goals update. Daily records pick up the new
// goals on their next mutation; existing snapshots are not rewritten.
func (u *profileUsecase) UpdateGoals(ctx context.Context, userID uint, upd GoalsUpdate) (*entity.User, error) {
	return u.users.UpdateGoals(ctx, userID, upd)
}
