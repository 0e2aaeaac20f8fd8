package usecase

import (
	"context"
	"errors"
	"time"

	"wellness_backend/internal/feature/tracking/domain/entity"
)

// RecordRepository abstracts the persistence layer for daily records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// The Add* methods must apply their increments atomically at the storage
// layer (a single UPDATE with column arithmetic), so that concurrent updates
// for the same user and day cannot lose each other's deltas.
type RecordRepository interface {
	// Create inserts a new daily record. It returns ErrDuplicateRecord when
	// a record for the same (user, day) already exists.
	Create(ctx context.Context, record *entity.DailyRecord) error

	// FindByUserAndDay retrieves the record for the given user and day.
	// It returns ErrRecordNotFound when none exists.
	FindByUserAndDay(ctx context.Context, userID uint, day time.Time) (*entity.DailyRecord, error)

	// AddWater atomically adds amountML to the day's water intake and writes
	// the goal snapshot.
	AddWater(ctx context.Context, userID uint, day time.Time, amountML, goalML int) error

	// AddFood atomically adds calories and meals to the day's food intake
	// and writes the goal snapshot.
	AddFood(ctx context.Context, userID uint, day time.Time, calories, meals, goalCal int) error

	// AddSleep atomically adds hours to the day's sleep total and writes
	// the goal snapshot.
	AddSleep(ctx context.Context, userID uint, day time.Time, hours, goalHours float64) error

	// ResetWater zeroes the day's water intake, leaving the goal snapshot
	// and the other metrics untouched.
	ResetWater(ctx context.Context, userID uint, day time.Time) error

	// ResetFood zeroes the day's food calories and meal count.
	ResetFood(ctx context.Context, userID uint, day time.Time) error

	// ResetSleep zeroes the day's sleep hours.
	ResetSleep(ctx context.Context, userID uint, day time.Time) error

	// ListRange retrieves the user's records with day in [from, to],
	// ascending by day. An empty result is not an error.
	ListRange(ctx context.Context, userID uint, from, to time.Time) ([]*entity.DailyRecord, error)
}

// Goals is a user's current daily intake targets.
type Goals struct {
	WaterML    int
	FoodCal    int
	SleepHours float64
}

// GoalSource provides the current goals for a user. The auth feature's user
// table is the provider.
type GoalSource interface {
	// CurrentGoals returns the user's goals, or ErrUserNotFound.
	CurrentGoals(ctx context.Context, userID uint) (Goals, error)
}

// trackingUsecase implements the daily-record lifecycle: find-or-create
// resolution, additive metric mutation with goal-snapshot refresh, per-metric
// reset and the trailing-week read.
type trackingUsecase struct {
	records RecordRepository
	goals   GoalSource
	loc     *time.Location
	now     func() time.Time
}

// NewTrackingUsecase creates a trackingUsecase. loc is the timezone used to
// compute calendar-day boundaries; the host locale is never consulted.
func NewTrackingUsecase(records RecordRepository, goals GoalSource, loc *time.Location) *trackingUsecase {
	return &trackingUsecase{
		records: records,
		goals:   goals,
		loc:     loc,
		now:     time.Now,
	}
}

// today returns midnight of the current day in the configured timezone.
func (u *trackingUsecase) today() time.Time {
	now := u.now().In(u.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, u.loc)
}

// ResolveToday returns the user's record for the current day, creating it
// with zeroed metrics and current goal snapshots if none exists yet.
//
// Two concurrent first-requests-of-the-day can both observe "not found" and
// both attempt the insert; the (user, day) unique constraint makes the loser
// fail with ErrDuplicateRecord, which is recovered by re-fetching the
// winner's row. Callers therefore always see exactly one record per day.
func (u *trackingUsecase) ResolveToday(ctx context.Context, userID uint) (*entity.DailyRecord, error) {
	day := u.today()

	record, err := u.records.FindByUserAndDay(ctx, userID, day)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	goals, err := u.goals.CurrentGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	record = &entity.DailyRecord{
		UserID: userID,
		Day:    day,
		Water:  entity.WaterMetric{GoalML: goals.WaterML},
		Food:   entity.FoodMetric{GoalCal: goals.FoodCal},
		Sleep:  entity.SleepMetric{GoalHours: goals.SleepHours},
	}
	if err := u.records.Create(ctx, record); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			// Lost the first-of-day race; the other writer's record wins.
			return u.records.FindByUserAndDay(ctx, userID, day)
		}
		return nil, err
	}
	return record, nil
}

// AddWater adds amountML to today's water intake, refreshing the goal
// snapshot from the user's current water goal, and returns the updated record.
func (u *trackingUsecase) AddWater(ctx context.Context, userID uint, amountML int) (*entity.DailyRecord, error) {
	goals, err := u.goals.CurrentGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ResolveToday(ctx, userID); err != nil {
		return nil, err
	}

	day := u.today()
	if err := u.records.AddWater(ctx, userID, day, amountML, goals.WaterML); err != nil {
		return nil, err
	}
	return u.records.FindByUserAndDay(ctx, userID, day)
}

// AddFood adds calories and meals to today's food intake, refreshing the goal
// snapshot, and returns the updated record.
func (u *trackingUsecase) AddFood(ctx context.Context, userID uint, calories, meals int) (*entity.DailyRecord, error) {
	goals, err := u.goals.CurrentGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ResolveToday(ctx, userID); err != nil {
		return nil, err
	}

	day := u.today()
	if err := u.records.AddFood(ctx, userID, day, calories, meals, goals.FoodCal); err != nil {
		return nil, err
	}
	return u.records.FindByUserAndDay(ctx, userID, day)
}

// AddSleep adds hours to today's sleep total. The addition is deliberate:
// logging 3 then 2 hours yields 5, not 2.
func (u *trackingUsecase) AddSleep(ctx context.Context, userID uint, hours float64) (*entity.DailyRecord, error) {
	goals, err := u.goals.CurrentGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := u.ResolveToday(ctx, userID); err != nil {
		return nil, err
	}

	day := u.today()
	if err := u.records.AddSleep(ctx, userID, day, hours, goals.SleepHours); err != nil {
		return nil, err
	}
	return u.records.FindByUserAndDay(ctx, userID, day)
}

// ResetWater zeroes today's water intake. Unlike the Add* operations it does
// not create a missing record: resetting before any update is
// ErrRecordNotFound.
func (u *trackingUsecase) ResetWater(ctx context.Context, userID uint) (*entity.DailyRecord, error) {
	return u.reset(ctx, userID, u.records.ResetWater)
}

// ResetFood zeroes today's food calories and meal count.
func (u *trackingUsecase) ResetFood(ctx context.Context, userID uint) (*entity.DailyRecord, error) {
	return u.reset(ctx, userID, u.records.ResetFood)
}

// ResetSleep zeroes today's sleep hours.
func (u *trackingUsecase) ResetSleep(ctx context.Context, userID uint) (*entity.DailyRecord, error) {
	return u.reset(ctx, userID, u.records.ResetSleep)
}

func (u *trackingUsecase) reset(ctx context.Context, userID uint,
	zero func(ctx context.Context, userID uint, day time.Time) error) (*entity.DailyRecord, error) {
	day := u.today()

	// Existence check first: a reset with no record is an error, not a
	// no-op create.
	if _, err := u.records.FindByUserAndDay(ctx, userID, day); err != nil {
		return nil, err
	}
	if err := zero(ctx, userID, day); err != nil {
		return nil, err
	}
	return u.records.FindByUserAndDay(ctx, userID, day)
}

// GetToday returns today's record without creating one.
func (u *trackingUsecase) GetToday(ctx context.Context, userID uint) (*entity.DailyRecord, error) {
	return u.records.FindByUserAndDay(ctx, userID, u.today())
}

// ListWeek returns the user's records for the trailing 7-day window ending
// today, ascending by day. The result is empty, not an error, when no
// records fall in range.
func (u *trackingUsecase) ListWeek(ctx context.Context, userID uint) ([]*entity.DailyRecord, error) {
	to := u.today()
	from := to.AddDate(0, 0, -6)
	return u.records.ListRange(ctx, userID, from, to)
}
