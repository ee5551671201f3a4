package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
	"github.com/doualadrive/backend-go/internal/handler"
)

func setupConfigurationRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Configuration{}, &models.OpeningHour{}, &models.Rate{}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewConfigurationService(repository.NewConfigurationRepository(db), logger)
	h := handler.NewConfigurationHandler(svc, logger)

	r := gin.New()
	r.GET("/configurations", h.List)
	r.GET("/configurations/:name", h.GetByName)
	r.POST("/configurations", h.CreateOrUpdate)
	r.DELETE("/configurations/:id", h.Delete)
	return r
}

const agencyPayload = `{
	"name": "Douala Drive",
	"address": "Douala, Cameroun",
	"phone": "+237 00 00 00 00",
	"email": "contact@doualadrive.com",
	"openingHours": [
		{"label": "Lundi - Samedi: 08:00 - 18:00"},
		{"label": "Dimanche: Sur rendez-vous"}
	],
	"rates": [
		{"title": "Journée", "icon": "sun", "excerpt": "Location à la journée", "price": "25 000 FCFA", "description": "Tarif journalier"}
	]
}`

func TestConfigurationHandler_CreateThenGet(t *testing.T) {
	r := setupConfigurationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/configurations", strings.NewReader(agencyPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created service.ConfigurationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.OpeningHours, 2)
	assert.Len(t, created.Rates, 1)

	req = httptest.NewRequest(http.MethodGet, "/configurations/Douala%20Drive", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched service.ConfigurationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "contact@doualadrive.com", fetched.Email)
}

func TestConfigurationHandler_GetByName_NotFound(t *testing.T) {
	r := setupConfigurationRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/configurations/Inconnue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Configuration introuvable.")
}

func TestConfigurationHandler_CreateOrUpdate_BindingError(t *testing.T) {
	r := setupConfigurationRouter(t)

	// email missing, openingHours missing
	payload := `{"name": "Douala Drive", "address": "Douala", "phone": "+237", "rates": []}`
	req := httptest.NewRequest(http.MethodPost, "/configurations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requête invalide.")
}

func TestConfigurationHandler_Delete(t *testing.T) {
	r := setupConfigurationRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/configurations", strings.NewReader(agencyPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created service.ConfigurationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodDelete, "/configurations/"+created.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Configuration supprimée avec succès.")

	// Deleting again is a 404
	req = httptest.NewRequest(http.MethodDelete, "/configurations/"+created.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Configuration introuvable.")
}
