package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// PublicHandler serves the unauthenticated catalogue endpoints: vehicle and
// article reads, the lookup lists, and the stored image files.
type PublicHandler struct {
	cfg            *config.Config
	vehicleService service.VehicleService
	articleService service.ArticleService
	lookupService  service.LookupService
	logger         *slog.Logger
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(
	cfg *config.Config,
	vehicleService service.VehicleService,
	articleService service.ArticleService,
	lookupService service.LookupService,
	logger *slog.Logger,
) *PublicHandler {
	return &PublicHandler{
		cfg:            cfg,
		vehicleService: vehicleService,
		articleService: articleService,
		lookupService:  lookupService,
		logger:         logger,
	}
}

// ListVehicles handles GET /public/vehicles
func (h *PublicHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAllVehicles()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// SearchVehicles handles GET /public/vehicles/:nameOrBrand. An unmatched
// search term is a 404, not an empty list.
func (h *PublicHandler) SearchVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetVehiclesByNameOrBrand(c.Param("nameOrBrand"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if len(vehicles) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Aucun véhicule trouvé."})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// ListVehiclesByCategory handles GET /public/vehicles/category/:categoryName.
// An unknown category name is a 404; a known but empty one is a 404 with a
// distinct message.
func (h *PublicHandler) ListVehiclesByCategory(c *gin.Context) {
	vehicles, err := h.vehicleService.GetVehiclesByCategoryName(c.Param("categoryName"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Catégorie introuvable."})
			return
		}
		respondError(c, h.logger, err)
		return
	}
	if len(vehicles) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Aucun véhicule trouvé pour cette catégorie."})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// ListArticles handles GET /public/articles
func (h *PublicHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.GetAllArticles()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticleBySlug handles GET /public/articles/:slug
func (h *PublicHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListArticlesByAuthor handles GET /public/articles/user/:userId. A user
// without articles is a 404, same as the vehicle search.
func (h *PublicHandler) ListArticlesByAuthor(c *gin.Context) {
	articles, err := h.articleService.GetArticlesByAuthor(c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Aucun article trouvé pour cet utilisateur."})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ListVehicleCategories handles GET /public/categories/vehicles
func (h *PublicHandler) ListVehicleCategories(c *gin.Context) {
	categories, err := h.lookupService.GetVehicleCategories()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListVehicleStatuses handles GET /public/statuses/vehicles
func (h *PublicHandler) ListVehicleStatuses(c *gin.Context) {
	statuses, err := h.lookupService.GetVehicleStatuses()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// ListArticleCategories handles GET /public/categories/articles
func (h *PublicHandler) ListArticleCategories(c *gin.Context) {
	categories, err := h.lookupService.GetArticleCategories()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListArticleStatuses handles GET /public/statuses/articles
func (h *PublicHandler) ListArticleStatuses(c *gin.Context) {
	statuses, err := h.lookupService.GetArticleStatuses()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// ListTags handles GET /public/tags
func (h *PublicHandler) ListTags(c *gin.Context) {
	tags, err := h.lookupService.GetTags()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GetImage handles GET /images/:filename. The parameter is reduced to its
// base name so a crafted path cannot escape the upload directory.
func (h *PublicHandler) GetImage(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.cfg.UploadDir, filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Fichier introuvable."})
		return
	}
	c.File(path)
}
