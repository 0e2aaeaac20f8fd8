// Package db opens the MySQL connection used by all repositories.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "wellness_backend/internal/feature/auth/adapters"
	authentity "wellness_backend/internal/feature/auth/domain/entity"
	trackingadapters "wellness_backend/internal/feature/tracking/adapters"
	"wellness_backend/internal/app/config"
)

// OpenDB connects to MySQL with a retry loop and optionally runs migrations.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the adapters turn into domain conflicts.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.Migrate {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&trackingadapters.DailyRecordModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
