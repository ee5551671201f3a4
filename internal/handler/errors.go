package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// ErrorResponse is the error envelope of every non-2xx response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// respondError maps the closed set of domain errors to HTTP statuses in one
// place. Anything outside the set collapses to a generic 500; the detail
// stays in the server log only.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Véhicule introuvable."})
	case errors.Is(err, repository.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article introuvable."})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Utilisateur introuvable."})
	case errors.Is(err, repository.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Catégorie introuvable."})
	case errors.Is(err, repository.ErrStatusNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Statut introuvable."})
	case errors.Is(err, repository.ErrTagNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Tag introuvable."})
	case errors.Is(err, repository.ErrConfigurationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Configuration introuvable."})
	case errors.Is(err, service.ErrUnknownTags):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Certains tags fournis n'existent pas."})
	default:
		logger.Error("❌ [Handler] Unclassified error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Une erreur inattendue est survenue."})
	}
}

// respondBindingError turns a request-shape validation failure into a 400
// with one message per offending field.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, fmt.Sprintf("Champ '%s' invalide (%s).", fieldErr.Field(), fieldErr.Tag()))
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide.", Errors: messages})
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Requête invalide.", Errors: []string{err.Error()}})
}
