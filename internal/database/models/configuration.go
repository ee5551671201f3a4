package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Configuration is the business-identity record of a rental agency. It owns
// its OpeningHour and Rate children; the children are hard-deleted with the
// parent, not soft-deleted.
type Configuration struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Address   string         `gorm:"not null" json:"address"`
	Phone     string         `gorm:"not null" json:"phone"`
	Email     string         `gorm:"not null" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	OpeningHours []OpeningHour `gorm:"foreignKey:ConfigurationID" json:"opening_hours,omitempty"`
	Rates        []Rate        `gorm:"foreignKey:ConfigurationID" json:"rates,omitempty"`
}

// TableName overrides the table name
func (Configuration) TableName() string {
	return "configurations"
}

func (c *Configuration) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// OpeningHour is one opening-hours line of a configuration, unique per
// (configuration, label) pair.
type OpeningHour struct {
	ID              string    `gorm:"type:uuid;primarykey" json:"id"`
	Label           string    `gorm:"not null;uniqueIndex:idx_opening_hours_config_label" json:"label"`
	ConfigurationID string    `gorm:"type:uuid;not null;uniqueIndex:idx_opening_hours_config_label" json:"configuration_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (OpeningHour) TableName() string {
	return "opening_hours"
}

func (o *OpeningHour) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Rate is one pricing offer of a configuration, unique per
// (configuration, title) pair.
type Rate struct {
	ID              string    `gorm:"type:uuid;primarykey" json:"id"`
	Title           string    `gorm:"not null;uniqueIndex:idx_rates_config_title" json:"title"`
	Icon            string    `gorm:"not null" json:"icon"`
	Excerpt         string    `gorm:"not null" json:"excerpt"`
	Price           string    `gorm:"not null" json:"price"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ConfigurationID string    `gorm:"type:uuid;not null;uniqueIndex:idx_rates_config_title" json:"configuration_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Rate) TableName() string {
	return "rates"
}

func (r *Rate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
