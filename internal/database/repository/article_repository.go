package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	FindAll() ([]models.Article, error)
	FindByID(id string) (*models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	FindByAuthor(authorID string) ([]models.Article, error)
	FindByCategory(categoryID string) ([]models.Article, error)
	FindByTag(tagID string) ([]models.Article, error)
	CreateOrUpdate(article *models.Article, tags []models.Tag) error
	UpdateStatusByID(id, statusID string) (*models.Article, error)
	DeleteByID(id string) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// withJoins eagerly loads category, tags, author and status for DTO mapping
func (r *articleRepository) withJoins() *gorm.DB {
	return r.db.Preload("Category").Preload("Tags").Preload("Author").Preload("Status")
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.withJoins().Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.withJoins().First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.withJoins().First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindByAuthor(authorID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.withJoins().Where("author_id = ?", authorID).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindByCategory(categoryID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.withJoins().Where("category_id = ?", categoryID).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindByTag(tagID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.withJoins().
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id = ?", tagID).
		Find(&articles).Error
	return articles, err
}

// CreateOrUpdate upserts the article then replaces its tag association set
// with the given tags. The old set is not merged.
func (r *articleRepository) CreateOrUpdate(article *models.Article, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if article.ID == "" {
			err = tx.Create(article).Error
		} else {
			err = tx.Omit("Tags").Save(article).Error
		}
		if err != nil {
			return err
		}

		if len(tags) == 0 {
			return tx.Model(article).Association("Tags").Clear()
		}
		return tx.Model(article).Association("Tags").Replace(tags)
	})
}

func (r *articleRepository) UpdateStatusByID(id, statusID string) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	article.StatusID = statusID
	if err := r.db.Save(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Article{}, "id = ?", id).Error
}

// Repository errors
var (
	ErrArticleNotFound = errors.New("article not found")
)
