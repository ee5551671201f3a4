package service

import (
	"errors"
	"log/slog"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

// ArticleRequest carries an article create-or-update payload. Tags holds tag
// ids; the stored association set is fully replaced by it.
type ArticleRequest struct {
	ID         string   `json:"id"`
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	CategoryID string   `json:"category_id" binding:"required,uuid"`
	Image      *string  `json:"image"`
	Excerpt    *string  `json:"excerpt"`
	StatusID   string   `json:"status_id" binding:"required,uuid"`
	Content    string   `json:"content" binding:"required"`
	AuthorID   string   `json:"author_id" binding:"required,uuid"`
	Tags       []string `json:"tags"`
}

// ArticleService defines the interface for article business logic
type ArticleService interface {
	GetAllArticles() ([]ArticleDTO, error)
	GetArticleByID(id string) (*ArticleDTO, error)
	GetArticleBySlug(slug string) (*ArticleDTO, error)
	GetArticlesByAuthor(authorID string) ([]ArticleDTO, error)
	GetArticlesByCategory(categoryID string) ([]ArticleDTO, error)
	GetArticlesByTag(tagID string) ([]ArticleDTO, error)
	CreateOrUpdateArticle(req ArticleRequest) (*ArticleDTO, error)
	UpdateArticleStatus(id, statusID string) (*ArticleDTO, error)
	DeleteArticleByID(id string) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	tagRepo     repository.TagRepository
	logger      *slog.Logger
}

// NewArticleService creates a new article service instance
func NewArticleService(
	articleRepo repository.ArticleRepository,
	tagRepo repository.TagRepository,
	logger *slog.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		logger:      logger,
	}
}

func (s *articleService) GetAllArticles() ([]ArticleDTO, error) {
	articles, err := s.articleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapArticles(articles), nil
}

func (s *articleService) GetArticleByID(id string) (*ArticleDTO, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	dto := toArticleDTO(article)
	return &dto, nil
}

func (s *articleService) GetArticleBySlug(slug string) (*ArticleDTO, error) {
	article, err := s.articleRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	dto := toArticleDTO(article)
	return &dto, nil
}

func (s *articleService) GetArticlesByAuthor(authorID string) ([]ArticleDTO, error) {
	articles, err := s.articleRepo.FindByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	return mapArticles(articles), nil
}

func (s *articleService) GetArticlesByCategory(categoryID string) ([]ArticleDTO, error) {
	articles, err := s.articleRepo.FindByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return mapArticles(articles), nil
}

func (s *articleService) GetArticlesByTag(tagID string) ([]ArticleDTO, error) {
	articles, err := s.articleRepo.FindByTag(tagID)
	if err != nil {
		return nil, err
	}
	return mapArticles(articles), nil
}

// CreateOrUpdateArticle verifies every requested tag id exists before any
// write happens, then upserts the article and replaces its tag set.
func (s *articleService) CreateOrUpdateArticle(req ArticleRequest) (*ArticleDTO, error) {
	s.logger.Info("📝 [ArticleService] Creating or updating article", "article_id", req.ID, "slug", req.Slug)

	var tags []models.Tag
	if len(req.Tags) > 0 {
		loaded, err := s.tagRepo.FindByIDs(req.Tags)
		if err != nil {
			return nil, err
		}
		if len(loaded) != len(req.Tags) {
			s.logger.Warn("⚠️ [ArticleService] Unknown tag ids in request",
				"requested", len(req.Tags),
				"found", len(loaded),
			)
			return nil, ErrUnknownTags
		}
		tags = loaded
	}

	article := models.Article{
		ID:         req.ID,
		Title:      req.Title,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
		Image:      req.Image,
		Excerpt:    req.Excerpt,
		StatusID:   req.StatusID,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
	}

	if err := s.articleRepo.CreateOrUpdate(&article, tags); err != nil {
		s.logger.Error("❌ [ArticleService] Failed to upsert article", "error", err)
		return nil, err
	}

	saved, err := s.articleRepo.FindByID(article.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [ArticleService] Article saved", "article_id", saved.ID)
	dto := toArticleDTO(saved)
	return &dto, nil
}

func (s *articleService) UpdateArticleStatus(id, statusID string) (*ArticleDTO, error) {
	s.logger.Info("🔄 [ArticleService] Updating article status", "article_id", id, "status_id", statusID)

	if _, err := s.articleRepo.UpdateStatusByID(id, statusID); err != nil {
		return nil, err
	}

	saved, err := s.articleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	dto := toArticleDTO(saved)
	return &dto, nil
}

func (s *articleService) DeleteArticleByID(id string) error {
	s.logger.Info("🗑️ [ArticleService] Deleting article", "article_id", id)
	return s.articleRepo.DeleteByID(id)
}

func mapArticles(articles []models.Article) []ArticleDTO {
	dtos := make([]ArticleDTO, 0, len(articles))
	for i := range articles {
		dtos = append(dtos, toArticleDTO(&articles[i]))
	}
	return dtos
}

// Service errors
var (
	ErrUnknownTags = errors.New("certains tags fournis n'existent pas")
)
