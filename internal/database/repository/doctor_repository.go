package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
)

// DoctorRepository defines the interface for doctor profile data operations
type DoctorRepository interface {
	FindByEmail(email string) (*models.Doctor, error)
	Update(id string, fields map[string]interface{}) (*models.Doctor, error)
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository instance
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(id string, fields map[string]interface{}) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&doctor).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &doctor, nil
}

// Repository errors
var (
	ErrDoctorNotFound = errors.New("doctor not found")
)
