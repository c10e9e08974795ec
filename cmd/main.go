package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/opengive/auth-service/config"
	"github.com/opengive/auth-service/db"
	"github.com/opengive/auth-service/internal/auth/cache"
	"github.com/opengive/auth-service/internal/auth/handler"
	repo "github.com/opengive/auth-service/internal/auth/repository/postgres"
	"github.com/opengive/auth-service/internal/auth/service"
	"github.com/opengive/auth-service/internal/notification"
	"github.com/opengive/auth-service/internal/observability"
	"github.com/opengive/auth-service/pkg/constant"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	observability.InitLogger(cfg.Env)

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		slog.Error("failed to init sentry", "error", err)
	}
	defer observability.FlushSentry()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	var notifier notification.Notifier = notification.NoopNotifier{}
	if cfg.SMTPHost != "" {
		emailNotifier, err := notification.NewEmailNotifier(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			log.Fatalf("smtp: %v", err)
		}
		notifier = emailNotifier
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	identityCache := cache.NewRedisCache(redisClient)
	snapshots := service.NewSnapshotSource(userRepo, identityCache, time.Duration(cfg.CacheTTLSec)*time.Second)

	tokenService, err := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	userService := service.NewUserService(
		userRepo,
		tokenService,
		hasher,
		service.NewTOTPEngine(constant.TOTPIssuer),
		service.NewQRCodeRenderer(),
		service.NewRefreshTokenVault(userRepo, hasher),
		service.NewLoginAuditor(userRepo),
		service.NewLockoutGuard(cfg.MaxFailedAttempts, cfg.LockoutMinutes),
		snapshots,
		notifier,
	)

	validator := service.NewAccessValidator(tokenService, snapshots)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, validator)

	slog.Info("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
