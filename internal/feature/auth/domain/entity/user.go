// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user together with profile attributes and
// the daily intake goals that seed and refresh daily-record snapshots.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Age, Weight and Height are optional physical attributes. Nil means
	// the user never supplied the value.
	Age    *int
	Weight *float64
	Height *float64

	// WaterGoalML is the daily water target in millilitres.
	WaterGoalML int `gorm:"not null;default:2000"`

	// FoodGoalCal is the daily food target in calories.
	FoodGoalCal int `gorm:"not null;default:2000"`

	// SleepGoalHours is the daily sleep target in hours.
	SleepGoalHours float64 `gorm:"not null;default:8"`

	// ResetCode and ResetCodeExpiry hold the transient password-reset
	// verification code. Both are nil outside an active reset flow.
	ResetCode       *string `gorm:"size:6"`
	ResetCodeExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
