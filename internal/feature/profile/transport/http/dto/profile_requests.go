// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

// ProfileUpdateReq is the body for PUT /profile. Every field is optional;
// bounds apply only to supplied fields.
type ProfileUpdateReq struct {
	Name   *string  `json:"name" binding:"omitempty,min=2"`
	Age    *int     `json:"age" binding:"omitempty,min=1,max=120"`
	Weight *float64 `json:"weight" binding:"omitempty,min=1"`
	Height *float64 `json:"height" binding:"omitempty,min=1"`
}

// GoalsUpdateReq is the body for PUT /profile/goals. Each goal is optional
// and independently bounded: water in ml (min 500), food in calories
// (min 1000), sleep in hours (4 to 12).
type GoalsUpdateReq struct {
	Water *int     `json:"water" binding:"omitempty,min=500"`
	Food  *int     `json:"food" binding:"omitempty,min=1000"`
	Sleep *float64 `json:"sleep" binding:"omitempty,min=4,max=12"`
}
