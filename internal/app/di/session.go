// Package di provides dependency injection factories for creating application components.
package di

import (
	authadapters "wellness_backend/internal/feature/auth/adapters"
	"wellness_backend/internal/feature/auth/usecase"
	"wellness_backend/internal/platform/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewSessionRepository picks the refresh-token session store. With a Redis
// client present, sessions live in Redis and expire through TTLs; without
// one, the MySQL table serves as the degraded single-store fallback.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionMySQL(db)
}
