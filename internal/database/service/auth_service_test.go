package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/repository"
)

func seedUser(t *testing.T, userRepo repository.UserRepository, email, password string, status models.UserStatus) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:              email,
		Password:           string(hashed),
		Role:               models.RoleAdmin,
		NeedPasswordChange: true,
		Status:             status,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, &recordingMailer{}, testConfig(), testLogger())

	seedUser(t, userRepo, "admin@example.com", "password123", models.StatusActive)
	seedUser(t, userRepo, "blocked@example.com", "password123", models.StatusBlocked)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "admin@example.com", password: "password123"},
		{name: "wrong password", email: "admin@example.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", email: "ghost@example.com", password: "password123", wantErr: ErrInvalidCredentials},
		{name: "blocked user", email: "blocked@example.com", password: "password123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
			assert.True(t, result.NeedPasswordChange)

			claims, err := authService.VerifyAccessToken(result.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, models.RoleAdmin, claims.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, &recordingMailer{}, testConfig(), testLogger())

	seedUser(t, userRepo, "admin@example.com", "password123", models.StatusActive)

	login, err := authService.Login("admin@example.com", "password123")
	require.NoError(t, err)

	result, err := authService.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = authService.RefreshToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An access token is signed with a different secret, so it must not work
	// as a refresh token.
	_, err = authService.RefreshToken(login.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authService := NewAuthService(userRepo, &recordingMailer{}, testConfig(), testLogger())

	seedUser(t, userRepo, "admin@example.com", "oldpassword", models.StatusActive)

	err := authService.ChangePassword("admin@example.com", "wrong", "newpassword")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	require.NoError(t, authService.ChangePassword("admin@example.com", "oldpassword", "newpassword"))

	updated, err := userRepo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.False(t, updated.NeedPasswordChange)

	_, err = authService.Login("admin@example.com", "newpassword")
	require.NoError(t, err)
}

func TestAuthService_ForgotAndResetPassword(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	mail := &recordingMailer{}
	cfg := testConfig()
	authService := NewAuthService(userRepo, mail, cfg, testLogger())

	user := seedUser(t, userRepo, "admin@example.com", "password123", models.StatusActive)

	require.NoError(t, authService.ForgotPassword("admin@example.com"))
	require.Len(t, mail.to, 1)
	assert.Equal(t, "admin@example.com", mail.to[0])
	assert.Contains(t, mail.links[0], cfg.ResetPasswordLink)
	assert.Contains(t, mail.links[0], user.ID)

	// Pull the token out of the emailed link.
	parsed, err := url.Parse(mail.links[0])
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	require.NotEmpty(t, token)

	err = authService.ResetPassword("garbage", user.ID, "resetpass")
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, authService.ResetPassword(token, user.ID, "resetpass"))

	// A reset counts as a password change.
	updated, err := userRepo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.False(t, updated.NeedPasswordChange)

	_, err = authService.Login("admin@example.com", "resetpass")
	require.NoError(t, err)
}
