package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// AdminRepository defines the interface for admin profile data operations.
// Reads exclude soft-deleted rows.
type AdminRepository interface {
	FindByID(id string) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	List(filter query.Filter, opts query.Options) ([]models.Admin, int64, error)
	Update(id string, fields map[string]interface{}) (*models.Admin, error)
	Delete(id string) (*models.Admin, error)
	SoftDelete(id string) (*models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByID(id string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) List(filter query.Filter, opts query.Options) ([]models.Admin, int64, error) {
	base := func() *gorm.DB {
		return filter.Apply(r.db.Model(&models.Admin{}).Where("is_deleted = ?", false))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []models.Admin
	if err := opts.Apply(base()).Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (r *adminRepository) Update(id string, fields map[string]interface{}) (*models.Admin, error) {
	admin, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(admin).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return admin, nil
}

// Delete removes the admin profile and its identity row in one transaction.
func (r *adminRepository) Delete(id string) (*models.Admin, error) {
	admin, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(admin).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", admin.Email).Delete(&models.User{}).Error
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// SoftDelete marks the profile deleted and flips the identity row to DELETED.
func (r *adminRepository) SoftDelete(id string) (*models.Admin, error) {
	admin, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(admin).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("email = ?", admin.Email).
			Update("status", models.StatusDeleted).Error
	})
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Repository errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)
