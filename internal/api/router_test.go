package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/handler"
	"github.com/thdihan/rangva-server/internal/storage"
)

type noopMailer struct{}

func (noopMailer) SendPasswordReset(to, resetLink string) error { return nil }

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Admin{}, &models.Doctor{},
		&models.Category{}, &models.Product{}, &models.ProductVariant{},
		&models.ProductReview{}, &models.Tag{}, &models.GalleryImage{},
	))

	cfg := &config.Config{
		AppEnv:                 "test",
		JWTSecret:              "access-secret",
		AccessTokenExpiration:  900,
		RefreshTokenSecret:     "refresh-secret",
		RefreshTokenExpiration: 900,
		ResetTokenSecret:       "reset-secret",
		ResetTokenExpiration:   600,
		StorageType:            config.StorageLocal,
		LocalUploadPath:        t.TempDir(),
		BaseURL:                "http://localhost:5000",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	tagRepo := repository.NewTagRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	localStore, err := storage.NewLocalStorage(cfg, logger)
	require.NoError(t, err)
	backends := map[string]storage.Storage{config.StorageLocal: localStore}

	authService := service.NewAuthService(userRepo, noopMailer{}, cfg, logger)
	userService := service.NewUserService(userRepo, adminRepo, doctorRepo, localStore, logger)
	adminService := service.NewAdminService(adminRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	productService := service.NewProductService(productRepo, tagRepo, categoryRepo, logger)
	galleryService := service.NewGalleryService(galleryRepo, backends, cfg.StorageType, logger)

	handlers := Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg, logger),
		User:     handler.NewUserHandler(userService, logger),
		Admin:    handler.NewAdminHandler(adminService, logger),
		Category: handler.NewCategoryHandler(categoryService, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Gallery:  handler.NewGalleryHandler(galleryService, logger),
	}

	return SetupRouter(cfg, handlers, authService, logger), db
}

func seedAccount(t *testing.T, db *gorm.DB, email string, role models.UserRole) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Status:   models.StatusActive,
	}).Error)
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	body, _ := json.Marshal(gin.H{"email": email, "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)

	assert.Contains(t, w.Header().Get("Set-Cookie"), "refreshToken=")
	return resp.Data.AccessToken
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if payload != nil {
		body, _ := json.Marshal(payload)
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_UnknownPath(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "API NOT FOUND", body["message"])

	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/api/v1/nope", errBody["path"])
}

func TestRouter_CategoryAccess(t *testing.T) {
	r, db := setupTestServer(t)
	seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	seedAccount(t, db, "patient@example.com", models.RolePatient)

	// Reads are public, writes are gated.
	w := doJSON(r, http.MethodGet, "/api/v1/category", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	payload := gin.H{"name": "Electronics"}
	w = doJSON(r, http.MethodPost, "/api/v1/category", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	patientToken := login(t, r, "patient@example.com")
	w = doJSON(r, http.MethodPost, "/api/v1/category", patientToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := login(t, r, "admin@example.com")
	w = doJSON(r, http.MethodPost, "/api/v1/category", adminToken, payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_ListMetaReportsUnresolvedPage(t *testing.T) {
	r, db := setupTestServer(t)
	seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	adminToken := login(t, r, "admin@example.com")

	for _, name := range []string{"One", "Two", "Three"} {
		w := doJSON(r, http.MethodPost, "/api/v1/category", adminToken, gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Without an explicit page the meta reports page 0 but still serves the
	// first page.
	w := doJSON(r, http.MethodGet, "/api/v1/category?limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meta struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"meta"`
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Meta.Page)
	assert.Equal(t, 2, resp.Meta.Limit)
	assert.EqualValues(t, 3, resp.Meta.Total)
	assert.Len(t, resp.Data, 2)

	w = doJSON(r, http.MethodGet, "/api/v1/category?page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Len(t, resp.Data, 1)
}

func TestRouter_ValidationFailure(t *testing.T) {
	r, db := setupTestServer(t)
	seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	adminToken := login(t, r, "admin@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/category", adminToken, gin.H{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
}

func TestRouter_TagConflict(t *testing.T) {
	r, db := setupTestServer(t)
	seedAccount(t, db, "admin@example.com", models.RoleAdmin)
	adminToken := login(t, r, "admin@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/tag", adminToken, gin.H{"name": "Summer Sale"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/tag", adminToken, gin.H{"name": "Summer Sale"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
