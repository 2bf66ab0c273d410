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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	v1 "github.com/shenikar/emergency_dispatch/internal/handler/http/v1"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/repository"
	"github.com/shenikar/emergency_dispatch/internal/repository/memory"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/logger"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/emergency_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/emergency_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Dispatch API
// @version 1.0
// @description Alert intake, nearest-unit dispatch and unit lifecycle.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
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

// openStores выбирает хранилище; для postgres возвращает функцию закрытия пула
func openStores(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.Stores, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		log.Warn("Using in-memory storage, state is lost on restart")
		if cfg.StationsFile == "" {
			log.Warn("STATIONS_FILE is not set, units cannot reference a station_id")
			return memory.NewStores(), func() {}, nil
		}
		stations, err := memory.LoadStations(cfg.StationsFile)
		if err != nil {
			return service.Stores{}, nil, fmt.Errorf("failed to load stations: %w", err)
		}
		log.WithField("count", len(stations)).Info("Seeded in-memory stations")
		return memory.NewStores(stations...), func() {}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return service.Stores{}, nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return service.Stores{}, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")
	return repository.NewStores(dbpool), dbpool.Close, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)
	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, every protected endpoint will answer 401")
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStores()

	// Вебхуки необязательны: без Redis назначения не публикуются
	var publisher webhook.Publisher = webhook.NopPublisher{}
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, assignment webhooks disabled")
	} else {
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		publisher = webhook.NewRedisPublisher(redisClient)
		if cfg.WebhookURL != "" {
			webhook.NewWorker(redisClient, log, cfg).Start(ctx)
		}
	}

	// Метрики
	recorder, err := metrics.NewPromRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Пространственный индекс доступных подразделений
	index := geo.NewIndex(cfg.IndexCellDegrees)
	service.NewIndexRefresher(stores.Units, index, recorder, log, cfg.IndexRefreshInterval, cfg.HeartbeatTTL).Start(ctx)

	// Инициализация сервисов
	dispatchService := service.NewDispatchService(stores, index, publisher, recorder, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dispatchService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("storage", cfg.StorageBackend).Infof("HTTP server started on port %s", cfg.HTTPPort)

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
	cancel()

	log.Info("Server gracefully stopped")
}
