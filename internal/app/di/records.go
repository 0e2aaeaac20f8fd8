package di

import (
	"time"

	trackingadapters "wellness_backend/internal/feature/tracking/adapters"
	"wellness_backend/internal/feature/tracking/usecase"
	"wellness_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewRecordRepository creates a RecordRepository implementation.
// If Redis is available, the MySQL repository is wrapped with a caching
// decorator for the weekly range read. Otherwise it returns plain MySQL.
func NewRecordRepository(rdb *redis.Client, db *gorm.DB, cacheTTL time.Duration) usecase.RecordRepository {
	repo := trackingadapters.NewRecordMySQL(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingRecordRepository(rdb, cacheTTL, repo, "records")
}
