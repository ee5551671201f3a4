package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// VehicleHandler handles the admin-scoped vehicle endpoints
type VehicleHandler struct {
	vehicleService service.VehicleService
	uploader       *Uploader
	logger         *slog.Logger
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService service.VehicleService, uploader *Uploader, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		uploader:       uploader,
		logger:         logger,
	}
}

type updateVehicleStatusRequest struct {
	StatusID string `json:"status_id" binding:"required,uuid"`
}

// CreateOrUpdate handles POST /vehicles
func (h *VehicleHandler) CreateOrUpdate(c *gin.Context) {
	var req service.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vehicle, err := h.vehicleService.CreateOrUpdateVehicle(req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// Delete handles DELETE /vehicles/:id. The not-found check runs before the
// delete so a missing vehicle yields a 404, not a silent no-op.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.vehicleService.GetVehicleByID(id); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Véhicule introuvable."})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	if err := h.vehicleService.DeleteVehicleByID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Véhicule supprimé avec succès."})
}

// UpdateStatus handles PATCH /vehicles/:id/status
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicleStatus(id, req.StatusID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Upload handles POST /vehicles/upload
func (h *VehicleHandler) Upload(c *gin.Context) {
	h.uploader.HandleUpload(c)
}
