package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"selfstorage/cmd"
	httpadapter "selfstorage/internal/adapters/in/http"
	"selfstorage/internal/adapters/out/notifier"
	postgres_adapter "selfstorage/internal/adapters/out/postgres"
	"selfstorage/internal/adapters/out/redislock"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := initLogger(configs.LogLevel)

	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(configs, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rates, err := cmd.LoadRateTable(configs.TariffsFile)
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = postgres_adapter.Migrate(db); err != nil {
		return err
	}

	reminders, closeNotifier := buildNotifier(configs, logger)
	defer closeNotifier()

	sweepLock, closeLock, err := buildSweepLock(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer closeLock()

	app := cmd.NewCompositionRoot(configs, db, rates, reminders, sweepLock, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpadapter.NewEcho(app.CreateServer(), logger, configs.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func buildNotifier(configs cmd.Config, logger *slog.Logger) (ports.Notifier, func()) {
	if len(configs.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS is empty, reminders are only logged")
		return notifier.NewLogNotifier(logger), func() {}
	}

	kafkaNotifier := notifier.NewKafkaNotifier(configs.KafkaBrokers, configs.KafkaReminderTopic, clock.System{})
	return kafkaNotifier, func() {
		if err := kafkaNotifier.Close(); err != nil {
			logger.Error("Failed to close kafka writer", "error", err)
		}
	}
}

// buildSweepLock returns a nil lock when Redis is not configured.
func buildSweepLock(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.SweepLock, func(), error) {
	if configs.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is empty, the sweep runs without a distributed lock")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	lock, err := redislock.NewSweepLock(client, "", configs.SweepLockTTL, logger)
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	return lock, closeClient, nil
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           env("HTTP_PORT", "8080"),
		RequestTimeout:     durationEnv("HTTP_REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:           env("LOG_LEVEL", "info"),
		DBHost:             env("DB_HOST", ""),
		DBPort:             env("DB_PORT", "5432"),
		DBUser:             env("DB_USER", ""),
		DBPassword:         env("DB_PASSWORD", ""),
		DBName:             env("DB_NAME", ""),
		DBSslMode:          env("DB_SSLMODE", "disable"),
		SweepSchedule:      env("SWEEP_SCHEDULE", "0 * * * * *"),
		SweepTimeout:       durationEnv("SWEEP_TIMEOUT", 50*time.Second),
		RedisAddr:          env("REDIS_ADDR", ""),
		RedisPassword:      env("REDIS_PASSWORD", ""),
		SweepLockTTL:       durationEnv("SWEEP_LOCK_TTL", time.Minute),
		KafkaBrokers:       splitCSV(env("KAFKA_BROKERS", "")),
		KafkaReminderTopic: env("KAFKA_REMINDER_TOPIC", "storage.reminders"),
		TariffsFile:        env("TARIFFS_FILE", ""),
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func initLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)
	return logger
}
