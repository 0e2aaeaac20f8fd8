package dto

import "wellness_backend/internal/feature/tracking/domain/entity"

// WaterResponse is the water sub-object returned by tracking endpoints.
type WaterResponse struct {
	Amount int `json:"amount"`
	Goal   int `json:"goal"`
}

// FoodResponse is the food sub-object returned by tracking endpoints.
type FoodResponse struct {
	Calories int `json:"calories"`
	Meals    int `json:"meals"`
	Goal     int `json:"goal"`
}

// SleepResponse is the sleep sub-object returned by tracking endpoints.
type SleepResponse struct {
	Hours float64 `json:"hours"`
	Goal  float64 `json:"goal"`
}

// RecordResponse is a full daily record as returned by the today and weekly
// endpoints. Date is the calendar day in YYYY-MM-DD form.
type RecordResponse struct {
	Date  string        `json:"date"`
	Water WaterResponse `json:"water"`
	Food  FoodResponse  `json:"food"`
	Sleep SleepResponse `json:"sleep"`
}

// NewWaterResponse builds the water sub-object from a record.
func NewWaterResponse(r *entity.DailyRecord) WaterResponse {
	return WaterResponse{Amount: r.Water.AmountML, Goal: r.Water.GoalML}
}

// NewFoodResponse builds the food sub-object from a record.
func NewFoodResponse(r *entity.DailyRecord) FoodResponse {
	return FoodResponse{Calories: r.Food.Calories, Meals: r.Food.Meals, Goal: r.Food.GoalCal}
}

// NewSleepResponse builds the sleep sub-object from a record.
func NewSleepResponse(r *entity.DailyRecord) SleepResponse {
	return SleepResponse{Hours: r.Sleep.Hours, Goal: r.Sleep.GoalHours}
}

// NewRecordResponse builds a full record response.
func NewRecordResponse(r *entity.DailyRecord) RecordResponse {
	return RecordResponse{
		Date:  r.Day.Format("2006-01-02"),
		Water: NewWaterResponse(r),
		Food:  NewFoodResponse(r),
		Sleep: NewSleepResponse(r),
	}
}
