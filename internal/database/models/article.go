package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is a blog-style post written by a local user, categorized and
// tagged through the article lookup tables.
type Article struct {
	ID         string         `gorm:"type:uuid;primarykey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID string         `gorm:"type:uuid;not null" json:"category_id"`
	Image      *string        `json:"image"`
	Excerpt    *string        `json:"excerpt"`
	StatusID   string         `gorm:"type:uuid;not null" json:"status_id"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	AuthorID   string         `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *CategoryArticle `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status   *StatusArticle   `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Author   *User            `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags     []Tag            `gorm:"many2many:article_tags" json:"tags,omitempty"`
}

// TableName overrides the table name
func (Article) TableName() string {
	return "articles"
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
