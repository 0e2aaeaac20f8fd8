package main

import (
	"context"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"wellness_backend/internal/app/config"
	"wellness_backend/internal/app/di"
	"wellness_backend/internal/app/router"
	authadapters "wellness_backend/internal/feature/auth/adapters"
	authhandler "wellness_backend/internal/feature/auth/transport/handler"
	authusecase "wellness_backend/internal/feature/auth/usecase"
	profileadapters "wellness_backend/internal/feature/profile/adapters"
	profilehandler "wellness_backend/internal/feature/profile/transport/handler"
	profileusecase "wellness_backend/internal/feature/profile/usecase"
	trackingadapters "wellness_backend/internal/feature/tracking/adapters"
	trackinghandler "wellness_backend/internal/feature/tracking/transport/handler"
	trackingusecase "wellness_backend/internal/feature/tracking/usecase"
	platformdb "wellness_backend/internal/platform/db"
	jwtmw "wellness_backend/internal/platform/jwt"
	platformredis "wellness_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT.Secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	loc, err := cfg.Tracking.Location()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	profileRepo := profileadapters.NewUserMySQL(db)
	recordRepo := di.NewRecordRepository(rdb, db, cfg.Tracking.WeeklyCacheTTL)
	goalSource := trackingadapters.NewGoalSourceMySQL(db)

	// Mailer
	mailer := di.NewMailer(context.Background(), cfg.Mail)

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiration)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, mailer,
		cfg.Session.TTL, cfg.Session.MaxPerUser)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	trackingUC := trackingusecase.NewTrackingUsecase(recordRepo, goalSource, loc)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	trackingH := trackinghandler.NewTrackingHandler(trackingUC)

	r := router.NewRouter(cfg.JWT.Secret, authH, profileH, trackingH)

	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
