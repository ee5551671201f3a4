package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/config"
)

// allowedUploadTypes is the media allow-list for every upload endpoint.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/avi":  true,
	"video/mkv":  true,
}

// Upload errors
var (
	ErrUploadMissing  = errors.New("no file uploaded")
	ErrUploadType     = errors.New("upload media type not allowed")
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
)

// Uploader stores multipart uploads under the configured directory and
// builds the public URLs pointing back at them.
type Uploader struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewUploader creates a new uploader instance
func NewUploader(cfg *config.Config, logger *slog.Logger) *Uploader {
	return &Uploader{cfg: cfg, logger: logger}
}

// Save validates and persists the multipart file under a collision-free
// name, returning the stored filename. A record write failing afterwards
// leaves the file orphaned; no cleanup is attempted.
func (u *Uploader) Save(c *gin.Context, header *multipart.FileHeader) (string, error) {
	if header.Size > u.cfg.MaxUploadSize {
		u.logger.Warn("⚠️ [Uploader] File exceeds size limit",
			"size_bytes", header.Size,
			"max_size_bytes", u.cfg.MaxUploadSize,
		)
		return "", ErrUploadTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		u.logger.Warn("⚠️ [Uploader] Media type not allowed", "content_type", contentType)
		return "", ErrUploadType
	}

	if err := os.MkdirAll(u.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%d-%s", time.Now().UnixNano(), rand.Intn(1e9), filepath.Base(header.Filename))
	destination := filepath.Join(u.cfg.UploadDir, filename)

	if err := c.SaveUploadedFile(header, destination); err != nil {
		return "", err
	}

	u.logger.Info("📁 [Uploader] File stored", "filename", filename, "size_bytes", header.Size)
	return filename, nil
}

// PublicURL builds the absolute retrieval URL of a stored file.
func (u *Uploader) PublicURL(filename string) string {
	return fmt.Sprintf("%s/%s/images/%s", u.cfg.PublicHostname, u.cfg.APIPrefix, filename)
}

// FormImage extracts the multipart "image" field shared by every upload
// endpoint.
func FormImage(c *gin.Context) (*multipart.FileHeader, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, ErrUploadMissing
	}
	return header, nil
}

// respondUploadError maps upload failures onto the closed response set.
func (u *Uploader) respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUploadMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Aucun fichier uploadé."})
	case errors.Is(err, ErrUploadTooLarge):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Le fichier dépasse la taille maximale de %d Mo.", u.cfg.MaxUploadSize/(1024*1024)),
		})
	case errors.Is(err, ErrUploadType):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Seuls les fichiers JPEG, PNG, et GIF et certains formats vidéos sont autorisés.",
		})
	default:
		u.logger.Error("❌ [Uploader] Failed to store file", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Une erreur inattendue est survenue."})
	}
}

// HandleUpload is the shared body of the vehicle and article upload
// endpoints: multipart field "image", allow-list check, size cap, unique
// name, absolute URL in the response.
func (u *Uploader) HandleUpload(c *gin.Context) {
	header, err := FormImage(c)
	if err != nil {
		u.respondUploadError(c, err)
		return
	}

	filename, err := u.Save(c, header)
	if err != nil {
		u.respondUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploadée avec succès.",
		"filename": u.PublicURL(filename),
	})
}
