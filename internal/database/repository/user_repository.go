package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	CreateWithAdmin(user *models.User, admin *models.Admin) error
	CreateWithDoctor(user *models.User, doctor *models.Doctor) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	List(filter query.Filter, opts query.Options) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateStatus(id string, status models.UserStatus) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithAdmin writes the identity row and its admin profile atomically.
func (r *userRepository) CreateWithAdmin(user *models.User, admin *models.Admin) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(admin).Error
	})
}

// CreateWithDoctor writes the identity row and its doctor profile atomically.
func (r *userRepository) CreateWithDoctor(user *models.User, doctor *models.Doctor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(doctor).Error
	})
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(filter query.Filter, opts query.Options) ([]models.User, int64, error) {
	var total int64
	if err := filter.Apply(r.db.Model(&models.User{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := opts.Apply(filter.Apply(r.db.Model(&models.User{}))).
		Preload("Admin").
		Preload("Doctor").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateStatus(id string, status models.UserStatus) (*models.User, error) {
	user, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Repository errors
var (
	ErrUserNotFound = errors.New("user not found")
)
