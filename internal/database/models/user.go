package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the local mirror of a Keycloak account. Rows are provisioned
// lazily on first authenticated access, never ahead of time.
type User struct {
	ID             string         `gorm:"type:uuid;primarykey" json:"id"`
	KeycloakID     string         `gorm:"index;not null" json:"-"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	Name           string         `gorm:"not null" json:"name"`
	Phone          *string        `gorm:"uniqueIndex" json:"phone"`
	FidelityPoints int            `gorm:"not null;default:0" json:"fidelity_points"`
	Role           string         `gorm:"not null" json:"role"`
	ProfilePicture *string        `json:"profile_picture"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
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
