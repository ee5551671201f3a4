package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/database/service"
)

// ConfigurationHandler handles the agency configuration endpoints
type ConfigurationHandler struct {
	configurationService service.ConfigurationService
	logger               *slog.Logger
}

// NewConfigurationHandler creates a new configuration handler
func NewConfigurationHandler(configurationService service.ConfigurationService, logger *slog.Logger) *ConfigurationHandler {
	return &ConfigurationHandler{
		configurationService: configurationService,
		logger:               logger,
	}
}

// List handles GET /configurations
func (h *ConfigurationHandler) List(c *gin.Context) {
	configurations, err := h.configurationService.GetAllConfigurations()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, configurations)
}

// GetByName handles GET /configurations/:name
func (h *ConfigurationHandler) GetByName(c *gin.Context) {
	configuration, err := h.configurationService.GetConfigurationByName(c.Param("name"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, configuration)
}

// CreateOrUpdate handles POST /configurations
func (h *ConfigurationHandler) CreateOrUpdate(c *gin.Context) {
	var req service.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	configuration, err := h.configurationService.CreateOrUpdateConfiguration(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, configuration)
}

// Delete handles DELETE /configurations/:id
func (h *ConfigurationHandler) Delete(c *gin.Context) {
	if err := h.configurationService.DeleteConfiguration(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration supprimée avec succès."})
}
