package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/mailer"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*LoginResult, error)
	RefreshToken(refreshToken string) (*LoginResult, error)
	ChangePassword(email, oldPassword, newPassword string) error
	ForgotPassword(email string) error
	ResetPassword(token, userID, newPassword string) error
	VerifyAccessToken(tokenString string) (*TokenClaims, error)
}

// LoginResult carries the tokens issued on login or refresh.
type LoginResult struct {
	AccessToken        string
	RefreshToken       string
	NeedPasswordChange bool
}

// TokenClaims is the identity carried inside every issued JWT.
type TokenClaims struct {
	Email string
	Role  models.UserRole
}

type authService struct {
	userRepo repository.UserRepository
	mailer   mailer.Mailer
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	m mailer.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   m,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.findActiveUser(email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user, s.cfg.JWTSecret, s.cfg.AccessTokenExpiration)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate access token", "error", err)
		return nil, err
	}

	refreshToken, err := s.generateToken(user, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiration)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate refresh token", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return &LoginResult{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		NeedPasswordChange: user.NeedPasswordChange,
	}, nil
}

func (s *authService) RefreshToken(refreshToken string) (*LoginResult, error) {
	s.logger.Info("🔄 [AuthService] Token refresh attempt")

	claims, err := verifyToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid refresh token", "error", err)
		return nil, ErrInvalidToken
	}

	user, err := s.findActiveUser(claims.Email)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.generateToken(user, s.cfg.JWTSecret, s.cfg.AccessTokenExpiration)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate access token", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AuthService] Token refreshed successfully", "user_id", user.ID)
	return &LoginResult{
		AccessToken:        accessToken,
		NeedPasswordChange: user.NeedPasswordChange,
	}, nil
}

func (s *authService) ChangePassword(email, oldPassword, newPassword string) error {
	s.logger.Info("🔑 [AuthService] Password change attempt", "email", email)

	user, err := s.findActiveUser(email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Old password incorrect", "email", email)
		return ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return err
	}

	user.Password = string(hashed)
	user.NeedPasswordChange = false
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to update password", "error", err)
		return err
	}

	s.logger.Info("✅ [AuthService] Password changed successfully", "user_id", user.ID)
	return nil
}

func (s *authService) ForgotPassword(email string) error {
	s.logger.Info("📧 [AuthService] Password reset requested", "email", email)

	user, err := s.findActiveUser(email)
	if err != nil {
		return err
	}

	resetToken, err := s.generateToken(user, s.cfg.ResetTokenSecret, s.cfg.ResetTokenExpiration)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate reset token", "error", err)
		return err
	}

	resetLink := fmt.Sprintf("%s?userId=%s&token=%s", s.cfg.ResetPasswordLink, user.ID, resetToken)
	if err := s.mailer.SendPasswordReset(user.Email, resetLink); err != nil {
		s.logger.Error("❌ [AuthService] Failed to send reset email", "error", err)
		return err
	}

	s.logger.Info("✅ [AuthService] Password reset email sent", "user_id", user.ID)
	return nil
}

func (s *authService) ResetPassword(token, userID, newPassword string) error {
	s.logger.Info("🔑 [AuthService] Password reset attempt", "user_id", userID)

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if user.Status != models.StatusActive {
		return ErrInvalidToken
	}

	claims, err := verifyToken(token, s.cfg.ResetTokenSecret)
	if err != nil || claims.Email != user.Email {
		s.logger.Warn("⚠️ [AuthService] Invalid reset token", "user_id", userID)
		return ErrInvalidToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.NeedPasswordChange = false
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [AuthService] Failed to reset password", "error", err)
		return err
	}

	s.logger.Info("✅ [AuthService] Password reset successfully", "user_id", user.ID)
	return nil
}

func (s *authService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return verifyToken(tokenString, s.cfg.JWTSecret)
}

func (s *authService) findActiveUser(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, err
	}
	if user.Status != models.StatusActive {
		s.logger.Warn("⚠️ [AuthService] User not active", "email", email, "status", user.Status)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User, secret string, ttlSeconds int64) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Duration(ttlSeconds) * time.Second).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{Email: email, Role: models.UserRole(role)}, nil
}

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
