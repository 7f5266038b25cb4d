package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleDoctor     UserRole = "DOCTOR"
	RolePatient    UserRole = "PATIENT"
)

type UserStatus string

const (
	StatusActive  UserStatus = "ACTIVE"
	StatusBlocked UserStatus = "BLOCKED"
	StatusDeleted UserStatus = "DELETED"
)

// User is the identity record. Role-specific attributes live in the Admin or
// Doctor profile row linked by email; the pair is always written together.
type User struct {
	ID                 string     `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"not null" json:"-"`
	Role               UserRole   `gorm:"not null" json:"role"`
	NeedPasswordChange bool       `gorm:"not null" json:"needPasswordChange"`
	Status             UserStatus `gorm:"not null;default:ACTIVE" json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Admin  *Admin  `gorm:"foreignKey:Email;references:Email" json:"admin,omitempty"`
	Doctor *Doctor `gorm:"foreignKey:Email;references:Email" json:"doctor,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
