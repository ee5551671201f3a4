package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// The five lookup tables (vehicle categories/statuses, article
// categories/statuses, tags) share one contract: list, find, upsert,
// soft-delete, find-or-create by unique name.

// CategoryRepository defines the interface for vehicle category data operations
type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id string) (*models.Category, error)
	CreateOrUpdate(category *models.Category) error
	FirstOrCreateByName(name string) (*models.Category, error)
	DeleteByID(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) CreateOrUpdate(category *models.Category) error {
	if category.ID == "" {
		return r.db.Create(category).Error
	}
	return r.db.Save(category).Error
}

func (r *categoryRepository) FirstOrCreateByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

// StatusRepository defines the interface for vehicle status data operations
type StatusRepository interface {
	FindAll() ([]models.Status, error)
	FindByID(id string) (*models.Status, error)
	CreateOrUpdate(status *models.Status) error
	FirstOrCreateByName(name string) (*models.Status, error)
	DeleteByID(id string) error
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) FindAll() ([]models.Status, error) {
	var statuses []models.Status
	err := r.db.Find(&statuses).Error
	return statuses, err
}

func (r *statusRepository) FindByID(id string) (*models.Status, error) {
	var status models.Status
	err := r.db.First(&status, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) CreateOrUpdate(status *models.Status) error {
	if status.ID == "" {
		return r.db.Create(status).Error
	}
	return r.db.Save(status).Error
}

func (r *statusRepository) FirstOrCreateByName(name string) (*models.Status, error) {
	var status models.Status
	err := r.db.Where(models.Status{Name: name}).FirstOrCreate(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Status{}, "id = ?", id).Error
}

// CategoryArticleRepository defines the interface for article category data operations
type CategoryArticleRepository interface {
	FindAll() ([]models.CategoryArticle, error)
	FindByID(id string) (*models.CategoryArticle, error)
	CreateOrUpdate(category *models.CategoryArticle) error
	FirstOrCreateByName(name string) (*models.CategoryArticle, error)
	DeleteByID(id string) error
}

type categoryArticleRepository struct {
	db *gorm.DB
}

// NewCategoryArticleRepository creates a new article category repository instance
func NewCategoryArticleRepository(db *gorm.DB) CategoryArticleRepository {
	return &categoryArticleRepository{db: db}
}

func (r *categoryArticleRepository) FindAll() ([]models.CategoryArticle, error) {
	var categories []models.CategoryArticle
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *categoryArticleRepository) FindByID(id string) (*models.CategoryArticle, error) {
	var category models.CategoryArticle
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryArticleRepository) CreateOrUpdate(category *models.CategoryArticle) error {
	if category.ID == "" {
		return r.db.Create(category).Error
	}
	return r.db.Save(category).Error
}

func (r *categoryArticleRepository) FirstOrCreateByName(name string) (*models.CategoryArticle, error) {
	var category models.CategoryArticle
	err := r.db.Where(models.CategoryArticle{Name: name}).FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryArticleRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.CategoryArticle{}, "id = ?", id).Error
}

// StatusArticleRepository defines the interface for article status data operations
type StatusArticleRepository interface {
	FindAll() ([]models.StatusArticle, error)
	FindByID(id string) (*models.StatusArticle, error)
	CreateOrUpdate(status *models.StatusArticle) error
	FirstOrCreateByName(name string) (*models.StatusArticle, error)
	DeleteByID(id string) error
}

type statusArticleRepository struct {
	db *gorm.DB
}

// NewStatusArticleRepository creates a new article status repository instance
func NewStatusArticleRepository(db *gorm.DB) StatusArticleRepository {
	return &statusArticleRepository{db: db}
}

func (r *statusArticleRepository) FindAll() ([]models.StatusArticle, error) {
	var statuses []models.StatusArticle
	err := r.db.Find(&statuses).Error
	return statuses, err
}

func (r *statusArticleRepository) FindByID(id string) (*models.StatusArticle, error) {
	var status models.StatusArticle
	err := r.db.First(&status, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *statusArticleRepository) CreateOrUpdate(status *models.StatusArticle) error {
	if status.ID == "" {
		return r.db.Create(status).Error
	}
	return r.db.Save(status).Error
}

func (r *statusArticleRepository) FirstOrCreateByName(name string) (*models.StatusArticle, error) {
	var status models.StatusArticle
	err := r.db.Where(models.StatusArticle{Name: name}).FirstOrCreate(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusArticleRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.StatusArticle{}, "id = ?", id).Error
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	FindAll() ([]models.Tag, error)
	FindByID(id string) (*models.Tag, error)
	FindByIDs(ids []string) ([]models.Tag, error)
	CreateOrUpdate(tag *models.Tag) error
	FirstOrCreateByName(name string) (*models.Tag, error)
	DeleteByID(id string) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByID(id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ids []string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) CreateOrUpdate(tag *models.Tag) error {
	if tag.ID == "" {
		return r.db.Create(tag).Error
	}
	return r.db.Save(tag).Error
}

func (r *tagRepository) FirstOrCreateByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}

// Repository errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrStatusNotFound   = errors.New("status not found")
	ErrTagNotFound      = errors.New("tag not found")
)
