package handler_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/handler"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		PublicHostname: "http://localhost:3000",
		APIPrefix:      "api/v1",
		MaxUploadSize:  1024 * 1024,
		UploadDir:      t.TempDir(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploader := handler.NewUploader(cfg, logger)

	r := gin.New()
	r.POST("/vehicles/upload", uploader.HandleUpload)
	return r, cfg
}

// imageForm builds a multipart body with one "image" part of the given
// declared content type and payload size.
func imageForm(t *testing.T, filename, contentType string, size int) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploader_HandleUpload(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		contentType    string
		size           int
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "png_accepted",
			filename:       "avant.png",
			contentType:    "image/png",
			size:           512,
			expectedStatus: http.StatusOK,
			expectedBody:   "http://localhost:3000/api/v1/images/",
		},
		{
			name:           "pdf_rejected",
			filename:       "contrat.pdf",
			contentType:    "application/pdf",
			size:           512,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Seuls les fichiers JPEG, PNG, et GIF et certains formats vidéos sont autorisés.",
		},
		{
			name:           "oversize_rejected",
			filename:       "enorme.png",
			contentType:    "image/png",
			size:           2 * 1024 * 1024,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Le fichier dépasse la taille maximale de 1 Mo.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupUploadRouter(t)

			body, contentType := imageForm(t, tt.filename, tt.contentType, tt.size)
			req := httptest.NewRequest(http.MethodPost, "/vehicles/upload", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestUploader_HandleUpload_StoresFile(t *testing.T) {
	r, cfg := setupUploadRouter(t)

	body, contentType := imageForm(t, "avant.png", "image/png", 512)
	req := httptest.NewRequest(http.MethodPost, "/vehicles/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Stored under a generated collision-free name keeping the base name
	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-avant.png"))
	assert.Contains(t, w.Body.String(), entries[0].Name())
}

func TestUploader_HandleUpload_MissingFile(t *testing.T) {
	r, _ := setupUploadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/vehicles/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Aucun fichier uploadé.")
}
