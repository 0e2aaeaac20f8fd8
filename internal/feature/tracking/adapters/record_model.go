// Package adapters provides repository implementations for the tracking feature.
package adapters

import (
	"time"

	"wellness_backend/internal/feature/tracking/domain/entity"
)

// DailyRecordModel is the GORM model for the daily_records table. The
// composite unique index on (user_id, day) is what turns the first-of-day
// creation race into a recoverable duplicate-key error.
type DailyRecordModel struct {
	ID     uint      `gorm:"primaryKey"`
	UserID uint      `gorm:"uniqueIndex:idx_user_day;not null"`
	Day    time.Time `gorm:"uniqueIndex:idx_user_day;not null"`

	WaterAmountML int `gorm:"not null;default:0"`
	WaterGoalML   int `gorm:"not null;default:2000"`

	FoodCalories int `gorm:"not null;default:0"`
	FoodMeals    int `gorm:"not null;default:0"`
	FoodGoalCal  int `gorm:"not null;default:2000"`

	SleepHours     float64 `gorm:"not null;default:0"`
	SleepGoalHours float64 `gorm:"not null;default:8"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (DailyRecordModel) TableName() string {
	return "daily_records"
}

// ToEntity converts the GORM model to a domain entity.
func (m *DailyRecordModel) ToEntity() *entity.DailyRecord {
	return &entity.DailyRecord{
		ID:     m.ID,
		UserID: m.UserID,
		Day:    m.Day,
		Water: entity.WaterMetric{
			AmountML: m.WaterAmountML,
			GoalML:   m.WaterGoalML,
		},
		Food: entity.FoodMetric{
			Calories: m.FoodCalories,
			Meals:    m.FoodMeals,
			GoalCal:  m.FoodGoalCal,
		},
		Sleep: entity.SleepMetric{
			Hours:     m.SleepHours,
			GoalHours: m.SleepGoalHours,
		},
	}
}

// RecordModelFromEntity converts a domain entity to a GORM model.
func RecordModelFromEntity(r *entity.DailyRecord) *DailyRecordModel {
	return &DailyRecordModel{
		ID:             r.ID,
		UserID:         r.UserID,
		Day:            r.Day,
		WaterAmountML:  r.Water.AmountML,
		WaterGoalML:    r.Water.GoalML,
		FoodCalories:   r.Food.Calories,
		FoodMeals:      r.Food.Meals,
		FoodGoalCal:    r.Food.GoalCal,
		SleepHours:     r.Sleep.Hours,
		SleepGoalHours: r.Sleep.GoalHours,
	}
}
