// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wellness_backend/internal/feature/tracking/domain/entity"
	"wellness_backend/internal/feature/tracking/usecase"
)

// CachingRecordRepository decorates a RecordRepository with Redis caching of
// the trailing-week range read. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
//
// Only ListRange is cached: single-day reads back every mutation, so caching
// them would be churn for no benefit. Every mutation invalidates the user's
// cached ranges.
type CachingRecordRepository struct {
	inner     usecase.RecordRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies RecordRepository.
var _ usecase.RecordRepository = (*CachingRecordRepository)(nil)

// NewCachingRecordRepository decorates a RecordRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "records".
func NewCachingRecordRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecordRepository, namespace string) *CachingRecordRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "records"
	}
	return &CachingRecordRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// userKeyPrefix returns the key prefix for all cached ranges of one user.
func (c *CachingRecordRepository) userKeyPrefix(userID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, userID)
}

// rangeKey returns the cache key for a (user, from, to) range read.
func (c *CachingRecordRepository) rangeKey(userID uint, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s", c.userKeyPrefix(userID),
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// ListRange retrieves records, checking the cache first and falling back to
// the database. The entry TTL never outlives the current day: at midnight the
// window itself shifts, so a stale window must not survive the rollover.
func (c *CachingRecordRepository) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]*entity.DailyRecord, error) {
	if c.rdb == nil {
		return c.inner.ListRange(ctx, userID, from, to)
	}

	key := c.rangeKey(userID, from, to)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []*entity.DailyRecord
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupt entry: fall through to the database and overwrite it.
	}

	records, err := c.inner.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	ttl := c.ttl
	if rollover := TimeUntilMidnight(to.Location()); rollover < ttl {
		ttl = rollover
	}
	if b, err := json.Marshal(records); err == nil && ttl > 0 {
		_ = c.rdb.Set(ctx, key, b, ttl).Err() // Best effort: a write failure only costs a cache miss
	}
	return records, nil
}

// Create inserts a record and invalidates the user's cached ranges.
func (c *CachingRecordRepository) Create(ctx context.Context, record *entity.DailyRecord) error {
	if err := c.inner.Create(ctx, record); err != nil {
		return err
	}
	c.invalidate(ctx, record.UserID)
	return nil
}

// FindByUserAndDay is a pass-through; single-day reads are not cached.
func (c *CachingRecordRepository) FindByUserAndDay(ctx context.Context, userID uint, day time.Time) (*entity.DailyRecord, error) {
	return c.inner.FindByUserAndDay(ctx, userID, day)
}

// AddWater applies the increment and invalidates the user's cached ranges.
func (c *CachingRecordRepository) AddWater(ctx context.Context, userID uint, day time.Time, amountML, goalML int) error {
	if err := c.inner.AddWater(ctx, userID, day, amountML, goalML); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// AddFood applies the increment and invalidates the user's cached ranges.
func (c *CachingRecordRepository) AddFood(ctx context.Context, userID uint, day time.Time, calories, meals, goalCal int) error {
	if err := c.inner.AddFood(ctx, userID, day, calories, meals, goalCal); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// AddSleep applies the increment and invalidates the user's cached ranges.
func (c *CachingRecordRepository) AddSleep(ctx context.Context, userID uint, day time.Time, hours, goalHours float64) error {
	if err := c.inner.AddSleep(ctx, userID, day, hours, goalHours); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// ResetWater zeroes the metric and invalidates the user's cached ranges.
func (c *CachingRecordRepository) ResetWater(ctx context.Context, userID uint, day time.Time) error {
	if err := c.inner.ResetWater(ctx, userID, day); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// ResetFood zeroes the metric and invalidates the user's cached ranges.
func (c *CachingRecordRepository) ResetFood(ctx context.Context, userID uint, day time.Time) error {
	if err := c.inner.ResetFood(ctx, userID, day); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// ResetSleep zeroes the metric and invalidates the user's cached ranges.
func (c *CachingRecordRepository) ResetSleep(ctx context.Context, userID uint, day time.Time) error {
	if err := c.inner.ResetSleep(ctx, userID, day); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// invalidate deletes every cached range for the user. Best effort: a failed
// invalidation costs at most one TTL of staleness.
func (c *CachingRecordRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, c.userKeyPrefix(userID)+"*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.rdb.Del(ctx, iter.Val()).Err()
	}
}
