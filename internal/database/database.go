package database

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var DATABASE *gorm.DB

const (
	maxConnectAttempts = 10
	maxRetryDelay      = 16 * time.Second

	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
)

func ConnectDatabase(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("🔌 [Database] Connecting to PostgreSQL...",
		"host", cfg.PostgreSQLHost,
		"port", cfg.PostgreSQLPort,
		"database", cfg.PostgreSQLDatabase,
	)

	db, err := openWithRetry(buildDSN(cfg), logger)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %w", maxConnectAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	DATABASE = db

	logger.Info("✅ [Database] Database connection established")

	logger.Info("🔄 [Database] Running migrations...")
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("✅ [Database] Migrations completed successfully")

	return nil
}

func buildDSN(cfg *config.Config) string {
	parts := []string{
		fmt.Sprintf("host=%s", cfg.PostgreSQLHost),
		fmt.Sprintf("port=%d", cfg.PostgreSQLPort),
		fmt.Sprintf("user=%s", cfg.PostgreSQLUser),
		fmt.Sprintf("password=%s", cfg.PostgreSQLPassword),
		fmt.Sprintf("dbname=%s", cfg.PostgreSQLDatabase),
		fmt.Sprintf("sslmode=%s", cfg.PostgreSQLSSLMode),
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// openWithRetry dials with exponential backoff, doubling the delay between
// attempts up to maxRetryDelay.
func openWithRetry(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	var lastErr error
	delay := time.Second

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					return db, nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err

		if attempt < maxConnectAttempts {
			logger.Warn("⏳ [Database] Connection failed, retrying...",
				"attempt", attempt,
				"max_attempts", maxConnectAttempts,
				"retry_in", delay,
				"error", err,
			)
			time.Sleep(delay)
			if delay *= 2; delay > maxRetryDelay {
				delay = maxRetryDelay
			}
		}
	}

	return nil, lastErr
}

func runMigrations(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	return nil
}

func GetDatabase() *gorm.DB {
	return DATABASE
}
