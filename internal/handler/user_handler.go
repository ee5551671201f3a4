package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// UserHandler handles the authenticated user endpoints
type UserHandler struct {
	userService service.UserService
	uploader    *Uploader
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, uploader *Uploader, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		uploader:    uploader,
		logger:      logger,
	}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByUsername handles GET /users/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Utilisateur introuvable."})
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req service.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUserProfile(c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadProfilePicture handles POST /users/:id/profile-picture. The stored
// filename is persisted on the user; the response carries the public URL.
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	header, err := FormImage(c)
	if err != nil {
		h.uploader.respondUploadError(c, err)
		return
	}

	filename, err := h.uploader.Save(c, header)
	if err != nil {
		h.uploader.respondUploadError(c, err)
		return
	}

	user, err := h.userService.UpdateUserProfilePicture(c.Param("id"), filename)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Photo de profil mise à jour avec succès.",
		"profilePicture": h.uploader.PublicURL(filename),
		"user":           user,
	})
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUserByID(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé avec succès."})
}
