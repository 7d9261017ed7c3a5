package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/client"
	"github.com/devanshg21/face-attendance-backend/config"
	"github.com/devanshg21/face-attendance-backend/handler"
	"github.com/devanshg21/face-attendance-backend/logger"
	"github.com/devanshg21/face-attendance-backend/routes"
	"github.com/devanshg21/face-attendance-backend/service"
	"github.com/devanshg21/face-attendance-backend/storage"
	"github.com/devanshg21/face-attendance-backend/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	cal, err := utils.NewCalendar(cfg.WorkingDays, cfg.Holidays)
	if err != nil {
		zlog.Fatal("invalid working day calendar", zap.Error(err))
	}

	db, err := storage.OpenDB(cfg.DBPath)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	store := storage.NewStore(db)

	notifier := client.NewWebhookNotifier(cfg.NotifyWebhookURL, zlog)

	directory := service.NewDirectoryService(store, zlog)
	matcher := service.NewMatcher(store, cfg.AmbiguityEpsilon, zlog)
	attendance := service.NewAttendanceService(store, notifier, cal, cfg.WorkStartTime, cfg.GracePeriod, zlog)
	leave := service.NewLeaveService(store, notifier, zlog)
	reports := service.NewReportService(store, cal, zlog)

	router := routes.NewRouter(
		handler.NewEmployeeHandler(directory),
		handler.NewAttendanceHandler(matcher, attendance, cfg.SimilarityThreshold),
		handler.NewLeaveHandler(leave),
		handler.NewReportHandler(reports),
	)

	zlog.Info("starting attendance service",
		zap.String("port", cfg.ServerPort),
		zap.String("db", cfg.DBPath),
		zap.Float64("similarity_threshold", cfg.SimilarityThreshold))

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
