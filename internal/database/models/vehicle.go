package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents a rental vehicle together with its category and status
type Vehicle struct {
	ID          string         `gorm:"type:uuid;primarykey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Brand       string         `gorm:"not null" json:"brand"`
	CategoryID  string         `gorm:"type:uuid;not null" json:"category_id"`
	Color       string         `gorm:"not null" json:"color"`
	Image       *string        `json:"image"`
	Video       *string        `json:"video"`
	Price       float64        `gorm:"not null" json:"price"`
	StatusID    string         `gorm:"type:uuid;not null" json:"status_id"`
	Features    *string        `gorm:"type:text" json:"features"`
	Description *string        `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status   *Status   `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

// TableName overrides the table name
func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
