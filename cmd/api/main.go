package main

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/safari-for-safety/roadkill-api/api/swagger"
	"github.com/safari-for-safety/roadkill-api/internal/handler"
	"github.com/safari-for-safety/roadkill-api/internal/migrations"
	"github.com/safari-for-safety/roadkill-api/internal/repository"
	"github.com/safari-for-safety/roadkill-api/internal/service"
	"github.com/safari-for-safety/roadkill-api/pkg/cache"
	"github.com/safari-for-safety/roadkill-api/pkg/config"
	"github.com/safari-for-safety/roadkill-api/pkg/database"
	"github.com/safari-for-safety/roadkill-api/pkg/logger"

	"go.uber.org/zap"
)

// @title Roadkill Map API
// @version 1.0.0
// @description Roadkill incident map and citizen report backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := migrations.Apply(db); err != nil {
		logr.Sugar().Fatalw("failed to apply migrations", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.StatsTTL, logr, true)
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	healthRepo := repository.NewHealthRepository(db)

	svcs := handler.Services{
		Auth: service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
			TokenSecret: cfg.JWT.Secret,
			TokenExpiry: cfg.JWT.Expiration,
		}),
		Incident: service.NewIncidentService(incidentRepo, reportRepo, statsRepo, weatherRepo, cacheSvc, logr),
		Report:   service.NewReportService(reportRepo, validate, cacheSvc, logr),
		Region:   service.NewRegionService(regionRepo, validate, logr),
		Stats:    service.NewStatsService(statsRepo, logr),
		Health:   service.NewHealthService(healthRepo, logr),
		Metrics:  metricsSvc,
	}

	r := handler.NewRouter(cfg, logr, svcs)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
