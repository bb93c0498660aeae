package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/mghazyfawazh/smart-attendance/docs"
	"github.com/mghazyfawazh/smart-attendance/internal/config"
	"github.com/mghazyfawazh/smart-attendance/internal/handlers"
	"github.com/mghazyfawazh/smart-attendance/internal/logging"
	"github.com/mghazyfawazh/smart-attendance/internal/middleware"
	"github.com/mghazyfawazh/smart-attendance/internal/repo"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

// @title       Smart Attendance Schedule API
// @version     1.0
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.Development())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	client, err := repo.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		logger.Fatal("connect mongo", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DBName)

	entries := repo.NewMongoRepo(ctx, db.Collection("schedules"), cfg.Transactions, logger)
	if !cfg.Transactions {
		logger.Warn("MONGO_TRANSACTIONS disabled: replace-all is not atomic")
	}
	svc := schedule.NewService(
		entries,
		repo.NewProfileRepo(db),
		repo.NewSubjectRepo(db),
		schedule.DayClock{Timezone: cfg.Timezone},
		logger,
	)
	migrator := &schedule.Migrator{Entries: entries, Legacy: repo.NewLegacyRepo(db, logger), Log: logger}
	h := handlers.NewHandler(svc, migrator, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	handlers.Register(r, h, cfg.JWTSecret, cfg.AdminAPIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("server running", zap.String("port", cfg.Port), zap.String("timezone", cfg.Timezone))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
