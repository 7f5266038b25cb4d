package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/service"
)

const testSecret = "access-secret"

func testAuthService() service.AuthService {
	cfg := &config.Config{
		JWTSecret:              testSecret,
		AccessTokenExpiration:  900,
		RefreshTokenSecret:     "refresh-secret",
		RefreshTokenExpiration: 900,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewAuthService(nil, nil, cfg, logger)
}

func signToken(t *testing.T, secret, email string, role models.UserRole, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.GET("/protected", Auth(testAuthService(), logger, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(ContextUserEmail),
			"role":  c.GetString(ContextUserRole),
		})
	})
	return r
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		roles      []models.UserRole
		token      string
		wantStatus int
	}{
		{
			name:       "missing token",
			roles:      []models.UserRole{models.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			roles:      []models.UserRole{models.RoleAdmin},
			token:      "not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong role",
			roles:      []models.UserRole{models.RoleSuperAdmin, models.RoleAdmin},
			token:      "patient",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "allowed role",
			roles:      []models.UserRole{models.RoleSuperAdmin, models.RoleAdmin},
			token:      "admin",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no role restriction accepts any valid token",
			token:      "patient",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.roles...)

			token := tt.token
			switch token {
			case "admin":
				token = signToken(t, testSecret, "admin@example.com", models.RoleAdmin, time.Minute)
			case "patient":
				token = signToken(t, testSecret, "patient@example.com", models.RolePatient, time.Minute)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if token != "" {
				req.Header.Set("Authorization", token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAuthRejectsExpiredAndForeignTokens(t *testing.T) {
	r := setupRouter(models.RoleAdmin)

	expired := signToken(t, testSecret, "admin@example.com", models.RoleAdmin, -time.Minute)
	foreign := signToken(t, "other-secret", "admin@example.com", models.RoleAdmin, time.Minute)

	for name, token := range map[string]string{"expired": expired, "foreign secret": foreign} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
