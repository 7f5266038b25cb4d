package service

import (
	"log/slog"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
)

// AdminFilterKeys are the query parameters the admin list accepts besides
// pagination.
var AdminFilterKeys = []string{"searchTerm", "name", "email", "contactNumber"}

// UpdateAdminInput is the partial-update payload for an admin profile.
type UpdateAdminInput struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contactNumber"`
	ProfilePhoto  *string `json:"profilePhoto"`
}

// AdminService defines the interface for admin profile business logic
type AdminService interface {
	List(params map[string]string, opts query.Options) ([]models.Admin, int64, error)
	Get(id string) (*models.Admin, error)
	Update(id string, input UpdateAdminInput) (*models.Admin, error)
	Delete(id string) (*models.Admin, error)
	SoftDelete(id string) (*models.Admin, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
	logger    *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo repository.AdminRepository, logger *slog.Logger) AdminService {
	return &adminService{adminRepo: adminRepo, logger: logger}
}

func (s *adminService) List(params map[string]string, opts query.Options) ([]models.Admin, int64, error) {
	filter := query.Filter{
		SearchTerm:   params["searchTerm"],
		SearchFields: []string{"name", "email"},
		Equals:       map[string]interface{}{},
	}
	for _, key := range []string{"name", "email", "contactNumber"} {
		if value, ok := params[key]; ok {
			filter.Equals[key] = value
		}
	}

	return s.adminRepo.List(filter, opts)
}

func (s *adminService) Get(id string) (*models.Admin, error) {
	return s.adminRepo.FindByID(id)
}

func (s *adminService) Update(id string, input UpdateAdminInput) (*models.Admin, error) {
	s.logger.Info("📝 [AdminService] Updating admin", "admin_id", id)

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.ContactNumber != nil {
		fields["contact_number"] = *input.ContactNumber
	}
	if input.ProfilePhoto != nil {
		fields["profile_photo"] = *input.ProfilePhoto
	}

	admin, err := s.adminRepo.Update(id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [AdminService] Admin updated successfully", "admin_id", id)
	return admin, nil
}

func (s *adminService) Delete(id string) (*models.Admin, error) {
	s.logger.Info("🗑️ [AdminService] Deleting admin", "admin_id", id)

	admin, err := s.adminRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [AdminService] Admin deleted successfully", "admin_id", id)
	return admin, nil
}

func (s *adminService) SoftDelete(id string) (*models.Admin, error) {
	s.logger.Info("🗑️ [AdminService] Soft deleting admin", "admin_id", id)

	admin, err := s.adminRepo.SoftDelete(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [AdminService] Admin soft deleted successfully", "admin_id", id)
	return admin, nil
}
