// Package dto defines data transfer objects for the tracking feature's HTTP transport layer.
package dto

// WaterUpdateReq is the body for PUT /tracking/water. The pointer makes a
// zero delta valid while a missing field is still rejected.
type WaterUpdateReq struct {
	Amount *int `json:"amount" binding:"required,gte=0"`
}

// FoodUpdateReq is the body for PUT /tracking/food. Meals defaults to 1 when
// omitted.
type FoodUpdateReq struct {
	Calories *int `json:"calories" binding:"required,gte=0"`
	Meals    *int `json:"meals" binding:"omitempty,gte=0"`
}

// SleepUpdateReq is the body for PUT /tracking/sleep. Hours are bounded to a
// single day; the stored total may still exceed 24 across multiple updates.
type SleepUpdateReq struct {
	Hours *float64 `json:"hours" binding:"required,gte=0,lte=24"`
}
