package dto

import "wellness_backend/internal/feature/auth/domain/entity"

// GoalsResponse is the goals sub-object of a profile.
type GoalsResponse struct {
	Water int     `json:"water"`
	Food  int     `json:"food"`
	Sleep float64 `json:"sleep"`
}

// ProfileResponse is a user profile as returned by the profile endpoints.
// The password hash and reset-code fields are never part of it.
type ProfileResponse struct {
	ID     uint          `json:"id"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Age    *int          `json:"age,omitempty"`
	Weight *float64      `json:"weight,omitempty"`
	Height *float64      `json:"height,omitempty"`
	Goals  GoalsResponse `json:"goals"`
}

// NewProfileResponse builds a profile response from a user entity.
func NewProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Age:    u.Age,
		Weight: u.Weight,
		Height: u.Height,
		Goals: GoalsResponse{
			Water: u.WaterGoalML,
			Food:  u.FoodGoalCal,
			Sleep: u.SleepGoalHours,
		},
	}
}
