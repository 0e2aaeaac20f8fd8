package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"wellness_backend/internal/feature/tracking/domain/entity"
	"wellness_backend/internal/feature/tracking/usecase"
)

// recordMySQL is the MySQL implementation of the RecordRepository interface.
// All increments run as single UPDATE statements with column arithmetic, so
// concurrent updates for the same user and day serialize at the database and
// never lose a delta.
type recordMySQL struct {
	db *gorm.DB
}

// Compile-time check that recordMySQL implements RecordRepository.
var _ usecase.RecordRepository = (*recordMySQL)(nil)

// NewRecordMySQL creates a new recordMySQL instance with the given gorm.DB handle.
func NewRecordMySQL(db *gorm.DB) *recordMySQL {
	return &recordMySQL{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM's error translation covers MySQL and the SQLite test driver; the
// MySQL error 1062 check remains for connections opened without translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Create inserts a new daily record. It returns usecase.ErrDuplicateRecord
// when the (user_id, day) unique index rejects the row.
func (r *recordMySQL) Create(ctx context.Context, record *entity.DailyRecord) error {
	model := RecordModelFromEntity(record)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateRecord
		}
		return err
	}
	record.ID = model.ID
	return nil
}

// FindByUserAndDay retrieves the record for the given user and day.
// It returns usecase.ErrRecordNotFound when none exists.
func (r *recordMySQL) FindByUserAndDay(ctx context.Context, userID uint, day time.Time) (*entity.DailyRecord, error) {
	var model DailyRecordModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecordNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// AddWater atomically adds amountML to the day's water intake and refreshes
// the goal snapshot.
func (r *recordMySQL) AddWater(ctx context.Context, userID uint, day time.Time, amountML, goalML int) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"water_amount_ml": gorm.Expr("water_amount_ml + ?", amountML),
			"water_goal_ml":   goalML,
		}).Error
}

// AddFood atomically adds calories and meals to the day's food intake and
// refreshes the goal snapshot.
func (r *recordMySQL) AddFood(ctx context.Context, userID uint, day time.Time, calories, meals, goalCal int) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"food_calories": gorm.Expr("food_calories + ?", calories),
			"food_meals":    gorm.Expr("food_meals + ?", meals),
			"food_goal_cal": goalCal,
		}).Error
}

// AddSleep atomically adds hours to the day's sleep total and refreshes the
// goal snapshot.
func (r *recordMySQL) AddSleep(ctx context.Context, userID uint, day time.Time, hours, goalHours float64) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"sleep_hours":      gorm.Expr("sleep_hours + ?", hours),
			"sleep_goal_hours": goalHours,
		}).Error
}

// ResetWater zeroes the day's water intake; the goal snapshot is untouched.
func (r *recordMySQL) ResetWater(ctx context.Context, userID uint, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Update("water_amount_ml", 0).Error
}

// ResetFood zeroes the day's food calories and meal count.
func (r *recordMySQL) ResetFood(ctx context.Context, userID uint, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"food_calories": 0,
			"food_meals":    0,
		}).Error
}

// ResetSleep zeroes the day's sleep hours.
func (r *recordMySQL) ResetSleep(ctx context.Context, userID uint, day time.Time) error {
	return r.db.WithContext(ctx).
		Model(&DailyRecordModel{}).
		Where("user_id = ? AND day = ?", userID, day).
		Update("sleep_hours", 0).Error
}

// ListRange retrieves the user's records with day in [from, to], ascending.
func (r *recordMySQL) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]*entity.DailyRecord, error) {
	var models []DailyRecordModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, from, to).
		Order("day ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*entity.DailyRecord, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}
	return records, nil
}
