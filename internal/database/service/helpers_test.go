package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Doctor{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.ProductReview{},
		&models.Tag{},
		&models.GalleryImage{},
	))
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                 "test",
		JWTSecret:              "access-secret",
		AccessTokenExpiration:  900,
		RefreshTokenSecret:     "refresh-secret",
		RefreshTokenExpiration: 604800,
		ResetTokenSecret:       "reset-secret",
		ResetTokenExpiration:   600,
		ResetPasswordLink:      "http://localhost:3000/reset-password",
	}
}

// recordingMailer captures outbound mail instead of sending it.
type recordingMailer struct {
	to    []string
	links []string
	err   error
}

func (m *recordingMailer) SendPasswordReset(to, resetLink string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.links = append(m.links, resetLink)
	return nil
}
