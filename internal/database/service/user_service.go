package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
	"github.com/thdihan/rangva-server/internal/storage"
)

// UserFilterKeys are the query parameters the user list accepts besides
// pagination.
var UserFilterKeys = []string{"searchTerm", "email", "role", "status"}

// CreateAdminInput is the payload for creating an admin account.
type CreateAdminInput struct {
	Password string `json:"password" binding:"required,min=6"`
	Admin    struct {
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		ContactNumber string `json:"contactNumber"`
	} `json:"admin" binding:"required"`
}

// CreateDoctorInput is the payload for creating a doctor account.
type CreateDoctorInput struct {
	Password string `json:"password" binding:"required,min=6"`
	Doctor   struct {
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		ContactNumber string `json:"contactNumber"`
	} `json:"doctor" binding:"required"`
}

// UserService defines the interface for user account business logic
type UserService interface {
	CreateAdmin(input CreateAdminInput) (*models.Admin, error)
	CreateDoctor(input CreateDoctorInput) (*models.Doctor, error)
	List(params map[string]string, opts query.Options) ([]models.User, int64, error)
	UpdateStatus(id string, status string) (*models.User, error)
	GetMyProfile(email string, role models.UserRole) (*models.User, interface{}, error)
	UpdateMyProfile(ctx context.Context, email string, role models.UserRole, fields map[string]interface{}, photo *multipart.FileHeader) (interface{}, error)
}

type userService struct {
	userRepo   repository.UserRepository
	adminRepo  repository.AdminRepository
	doctorRepo repository.DoctorRepository
	store      storage.Storage
	logger     *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	doctorRepo repository.DoctorRepository,
	store storage.Storage,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		doctorRepo: doctorRepo,
		store:      store,
		logger:     logger,
	}
}

func (s *userService) CreateAdmin(input CreateAdminInput) (*models.Admin, error) {
	s.logger.Info("📝 [UserService] Creating admin", "email", input.Admin.Email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	if err := s.ensureEmailFree(input.Admin.Email); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:              input.Admin.Email,
		Password:           string(hashed),
		Role:               models.RoleAdmin,
		NeedPasswordChange: true,
		Status:             models.StatusActive,
	}
	admin := &models.Admin{
		Name:          input.Admin.Name,
		Email:         input.Admin.Email,
		ContactNumber: input.Admin.ContactNumber,
	}

	if err := s.userRepo.CreateWithAdmin(user, admin); err != nil {
		s.logger.Error("❌ [UserService] Failed to create admin", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Admin created successfully", "admin_id", admin.ID)
	return admin, nil
}

func (s *userService) CreateDoctor(input CreateDoctorInput) (*models.Doctor, error) {
	s.logger.Info("📝 [UserService] Creating doctor", "email", input.Doctor.Email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	if err := s.ensureEmailFree(input.Doctor.Email); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:              input.Doctor.Email,
		Password:           string(hashed),
		Role:               models.RoleDoctor,
		NeedPasswordChange: true,
		Status:             models.StatusActive,
	}
	doctor := &models.Doctor{
		Name:          input.Doctor.Name,
		Email:         input.Doctor.Email,
		ContactNumber: input.Doctor.ContactNumber,
	}

	if err := s.userRepo.CreateWithDoctor(user, doctor); err != nil {
		s.logger.Error("❌ [UserService] Failed to create doctor", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Doctor created successfully", "doctor_id", doctor.ID)
	return doctor, nil
}

func (s *userService) List(params map[string]string, opts query.Options) ([]models.User, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"email"},
		Equals:       map[string]interface{}{},
	}
	for _, key := range []string{"email", "role", "status"} {
		if value, ok := params[key]; ok {
			filter.Equals[key] = value
		}
	}

	return s.userRepo.List(filter, opts)
}

func (s *userService) UpdateStatus(id string, status string) (*models.User, error) {
	s.logger.Info("🔄 [UserService] Updating user status", "user_id", id, "status", status)

	switch models.UserStatus(status) {
	case models.StatusActive, models.StatusBlocked, models.StatusDeleted:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.UpdateStatus(id, models.UserStatus(status))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("❌ [UserService] Failed to update status", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User status updated", "user_id", id)
	return user, nil
}

func (s *userService) GetMyProfile(email string, role models.UserRole) (*models.User, interface{}, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.findProfile(email, role)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *userService) UpdateMyProfile(ctx context.Context, email string, role models.UserRole, fields map[string]interface{}, photo *multipart.FileHeader) (interface{}, error) {
	s.logger.Info("📝 [UserService] Updating profile", "email", email, "role", role)

	if photo != nil {
		name := fmt.Sprintf("profile-%d%s", time.Now().UnixMilli(), filepath.Ext(photo.Filename))
		result, err := s.store.Upload(ctx, photo, name)
		if err != nil {
			s.logger.Error("❌ [UserService] Failed to upload profile photo", "error", err)
			return nil, err
		}
		fields["profilePhoto"] = result.URL
	}

	columns := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		columns[query.ColumnName(field)] = value
	}

	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin:
		admin, err := s.adminRepo.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		return s.adminRepo.Update(admin.ID, columns)
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		return s.doctorRepo.Update(doctor.ID, columns)
	default:
		return nil, ErrProfileNotFound
	}
}

// findProfile resolves the role-specific profile row, nil when the role has
// none.
func (s *userService) findProfile(email string, role models.UserRole) (interface{}, error) {
	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin:
		admin, err := s.adminRepo.FindByEmail(email)
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return admin, nil
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.FindByEmail(email)
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return doctor, nil
	default:
		return nil, nil
	}
}

func (s *userService) ensureEmailFree(email string) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return err
	}
	if existing != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", email)
		return ErrEmailAlreadyExists
	}
	return nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidStatus      = errors.New("invalid user status")
	ErrProfileNotFound    = errors.New("profile not found")
)
