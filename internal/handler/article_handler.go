package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// ArticleHandler handles the admin-scoped article endpoints
type ArticleHandler struct {
	articleService service.ArticleService
	uploader       *Uploader
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService service.ArticleService, uploader *Uploader, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		uploader:       uploader,
		logger:         logger,
	}
}

type updateArticleStatusRequest struct {
	StatusID string `json:"status_id" binding:"required,uuid"`
}

// CreateOrUpdate handles POST /articles
func (h *ArticleHandler) CreateOrUpdate(c *gin.Context) {
	var req service.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	article, err := h.articleService.CreateOrUpdateArticle(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Delete handles DELETE /articles/:id with an explicit not-found pre-check
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.articleService.GetArticleByID(id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article introuvable."})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	if err := h.articleService.DeleteArticleByID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé avec succès."})
}

// UpdateStatus handles PATCH /articles/:id/status
func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticleStatus(id, req.StatusID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Upload handles POST /articles/upload
func (h *ArticleHandler) Upload(c *gin.Context) {
	h.uploader.HandleUpload(c)
}
