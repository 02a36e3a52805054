package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/safewalk/internal/bridge"
	"github.com/shenikar/safewalk/internal/config"
	"github.com/shenikar/safewalk/internal/connectivity"
	v1 "github.com/shenikar/safewalk/internal/handler/http/v1"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/monitor"
	"github.com/shenikar/safewalk/internal/notify"
	"github.com/shenikar/safewalk/internal/repository"
	"github.com/shenikar/safewalk/internal/service"
	"github.com/shenikar/safewalk/pkg/logger"
	"github.com/shenikar/safewalk/pkg/postgres"
	redisclient "github.com/shenikar/safewalk/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safewalk/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// inboxBuffer - сколько сообщений клиентов может ждать обработки монитором
const inboxBuffer = 64

// @title SafeWalk API
// @version 1.0
// @description Background proximity monitor of the SafeWalk personal safety app.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Контрольные точки: бд, если настроена, иначе файл или встроенный набор
	var checkpointSource service.CheckpointRepository
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		checkpointSource = repository.NewCheckpointRepository(dbpool)
	}

	registry, err := service.LoadRegistry(ctx, checkpointSource, cfg.CheckpointsFile, log)
	if err != nil {
		log.Fatalf("Failed to load checkpoints: %v", err)
	}

	// Поверхность уведомлений: очередь Redis с доставкой на push-адрес или лог
	var notifier monitor.Notifier
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		permission := models.PermissionDenied
		if cfg.NotificationsGranted() && cfg.PushURL != "" {
			permission = models.PermissionGranted
		}
		notifier = notify.NewRedisNotifier(redisClient, permission)

		// Инициализация и запуск воркера уведомлений
		worker := notify.NewWorker(redisClient, log, cfg)
		worker.Start(ctx)
	} else {
		permission := models.PermissionDenied
		if cfg.NotificationsGranted() {
			permission = models.PermissionGranted
		}
		notifier = notify.NewLogNotifier(log, permission)
	}

	// Фоновый монитор и канал к клиентам
	inbox := make(chan bridge.Message, inboxBuffer)
	hub := bridge.NewHub(inbox, log)
	prober := connectivity.NewHTTPProber(cfg.ProbeURL, cfg.ProbeTimeout)
	mon := monitor.New(registry, notifier, prober, hub, log, cfg.ProbeTimeout)

	monitorDone := make(chan struct{})
	go func() {
		mon.Run(ctx, inbox)
		close(monitorDone)
	}()

	// Инициализация хэндлеров
	checkpointService := service.NewCheckpointService(registry, log)
	handler := v1.NewHandler(checkpointService, mon, hub, log)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// WebSocket-соединения не закрываются через Shutdown
	hub.Close()
	cancel()
	<-monitorDone

	log.Info("Server gracefully stopped")
}
