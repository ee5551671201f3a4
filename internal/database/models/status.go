package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is a vehicle status lookup row (Disponible, En location, ...)
type Status struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Status) TableName() string {
	return "statuses"
}

func (s *Status) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
