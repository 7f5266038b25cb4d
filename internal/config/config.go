package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backend discriminators. Gallery records persist the value they were
// uploaded under, so deletion can dispatch on it later.
const (
	StorageLocal = "local"
	StorageCloud = "cloud"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	Port     string

	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	PostgreSQLSSLMode  string

	JWTSecret              string
	AccessTokenExpiration  int64 // seconds
	RefreshTokenSecret     string
	RefreshTokenExpiration int64 // seconds
	ResetTokenSecret       string
	ResetTokenExpiration   int64 // seconds
	ResetPasswordLink      string

	StorageType     string
	LocalUploadPath string
	BaseURL         string

	S3Bucket string
	S3Region string

	EmailHost     string
	EmailPort     int64
	EmailSender   string
	EmailPassword string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"), // Default development
		LogLevel: getLogLevel(),                    // Default INFO
		Port:     getEnv("PORT", "5000"),           // Default 5000

		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                  // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),           // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "rangva_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "rangva_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "rangva_db"),       // Default database name
		PostgreSQLSSLMode:  getEnv("POSTGRESQL_SSLMODE", "disable"),          // disable | require | verify-full

		JWTSecret:              getEnv("JWT_SECRET", "rangva_secret"),                                 // Access token secret
		AccessTokenExpiration:  getEnvAsInt64("ACCESS_TOKEN_EXPIRATION", 900),                         // Default 15 minutes
		RefreshTokenSecret:     getEnv("REFRESH_TOKEN_SECRET", "rangva_refresh_secret"),               // Refresh token secret
		RefreshTokenExpiration: getEnvAsInt64("REFRESH_TOKEN_EXPIRATION", 604800),                     // Default 7 days
		ResetTokenSecret:       getEnv("RESET_TOKEN_SECRET", "rangva_reset_secret"),                   // Reset token secret
		ResetTokenExpiration:   getEnvAsInt64("RESET_TOKEN_EXPIRATION", 600),                          // Default 10 minutes
		ResetPasswordLink:      getEnv("RESET_PASSWORD_LINK", "http://localhost:3000/reset-password"), // Frontend reset page

		StorageType:     getStorageType(),                                      // Default local
		LocalUploadPath: getEnv("LOCAL_UPLOAD_PATH", "public/uploads/gallery"), // Relative to working dir
		BaseURL:         getEnv("BASE_URL", "http://localhost:5000"),           // Public URL prefix for local files

		S3Bucket: getEnv("S3_BUCKET", ""),          // Required when STORAGE_TYPE=cloud
		S3Region: getEnv("S3_REGION", "us-east-1"), // Default us-east-1

		EmailHost:     getEnv("EMAIL_HOST", "smtp.gmail.com"), // Default gmail SMTP
		EmailPort:     getEnvAsInt64("EMAIL_PORT", 587),       // Default 587
		EmailSender:   getEnv("EMAIL_SENDER", ""),             // Sender address
		EmailPassword: getEnv("EMAIL_APP_PASS", ""),           // App password
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getStorageType() string {
	switch strings.ToLower(getEnv("STORAGE_TYPE", StorageLocal)) {
	case StorageCloud:
		return StorageCloud
	default:
		return StorageLocal
	}
}
