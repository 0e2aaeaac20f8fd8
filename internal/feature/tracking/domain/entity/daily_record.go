// Package entity defines the domain entities for the tracking feature.
package entity

import "time"

// WaterMetric is the water intake portion of a daily record.
type WaterMetric struct {
	AmountML int // cumulative intake for the day
	GoalML   int // goal snapshot as of the last mutation
}

// FoodMetric is the food intake portion of a daily record.
type FoodMetric struct {
	Calories int // cumulative calories for the day
	Meals    int // cumulative meal count for the day
	GoalCal  int // goal snapshot as of the last mutation
}

// SleepMetric is the sleep portion of a daily record.
type SleepMetric struct {
	Hours     float64 // cumulative hours for the day
	GoalHours float64 // goal snapshot as of the last mutation
}

// DailyRecord aggregates one user's water, food and sleep metrics for a
// single calendar day. At most one record exists per (user, day); Day is
// always midnight of that day in the configured tracking timezone.
//
// Goal snapshots track the user's goal at the time of the last mutation,
// not the goal at record-creation time: every mutating operation refreshes
// them from the user's current goals.
type DailyRecord struct {
	ID     uint
	UserID uint
	Day    time.Time

	Water WaterMetric
	Food  FoodMetric
	Sleep SleepMetric
}
