package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusArticle is an article status lookup row (Publié, Brouillon)
type StatusArticle struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (StatusArticle) TableName() string {
	return "status_articles"
}

func (s *StatusArticle) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
