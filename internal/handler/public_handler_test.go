package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
	"github.com/doualadrive/backend-go/internal/handler"
)

func setupPublicRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Status{},
		&models.Vehicle{},
		&models.User{},
		&models.CategoryArticle{},
		&models.StatusArticle{},
		&models.Tag{},
		&models.Article{},
	))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{UploadDir: t.TempDir()}

	vehicleService := service.NewVehicleService(
		repository.NewVehicleRepository(db),
		repository.NewCategoryRepository(db),
		logger,
	)
	articleService := service.NewArticleService(
		repository.NewArticleRepository(db),
		repository.NewTagRepository(db),
		logger,
	)
	lookupService := service.NewLookupService(
		repository.NewCategoryRepository(db),
		repository.NewStatusRepository(db),
		repository.NewCategoryArticleRepository(db),
		repository.NewStatusArticleRepository(db),
		repository.NewTagRepository(db),
	)

	h := handler.NewPublicHandler(cfg, vehicleService, articleService, lookupService, logger)

	r := gin.New()
	r.GET("/public/vehicles", h.ListVehicles)
	r.GET("/public/vehicles/:nameOrBrand", h.SearchVehicles)
	r.GET("/public/vehicles/category/:categoryName", h.ListVehiclesByCategory)
	r.GET("/public/articles/user/:userId", h.ListArticlesByAuthor)
	r.GET("/public/categories/vehicles", h.ListVehicleCategories)
	r.GET("/images/:filename", h.GetImage)
	return r, db
}

func createPublicVehicle(t *testing.T, db *gorm.DB) {
	category := &models.Category{Name: "SUV"}
	require.NoError(t, db.Create(category).Error)
	berline := &models.Category{Name: "Berline"}
	require.NoError(t, db.Create(berline).Error)
	status := &models.Status{Name: "Disponible"}
	require.NoError(t, db.Create(status).Error)

	vehicle := &models.Vehicle{
		Name:       "Prado",
		Brand:      "Toyota",
		CategoryID: category.ID,
		Color:      "Noir",
		Price:      45000,
		StatusID:   status.ID,
	}
	require.NoError(t, db.Create(vehicle).Error)
}

func TestPublicHandler_SearchVehicles(t *testing.T) {
	r, db := setupPublicRouter(t)
	createPublicVehicle(t, db)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "match",
			path:           "/public/vehicles/Toyota",
			expectedStatus: http.StatusOK,
			expectedBody:   "Prado",
		},
		{
			name:           "no_match_is_404",
			path:           "/public/vehicles/Ferrari",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Aucun véhicule trouvé.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestPublicHandler_ListVehiclesByCategory(t *testing.T) {
	r, db := setupPublicRouter(t)
	createPublicVehicle(t, db)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "category_with_vehicles",
			path:           "/public/vehicles/category/SUV",
			expectedStatus: http.StatusOK,
			expectedBody:   "Prado",
		},
		{
			name:           "unknown_category",
			path:           "/public/vehicles/category/Cabriolet",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Catégorie introuvable.",
		},
		{
			name:           "known_category_without_vehicles",
			path:           "/public/vehicles/category/Berline",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Aucun véhicule trouvé pour cette catégorie.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestPublicHandler_ListArticlesByAuthor(t *testing.T) {
	r, db := setupPublicRouter(t)

	category := &models.CategoryArticle{Name: "Conseils"}
	require.NoError(t, db.Create(category).Error)
	status := &models.StatusArticle{Name: "Publié"}
	require.NoError(t, db.Create(status).Error)
	author := &models.User{
		KeycloakID: "kc-author",
		Email:      "author@doualadrive.com",
		Name:       "Jean Mbarga",
		Role:       "admin",
	}
	require.NoError(t, db.Create(author).Error)
	article := &models.Article{
		Title:      "Conduire à Douala",
		Slug:       "conduire-a-douala",
		CategoryID: category.ID,
		StatusID:   status.ID,
		Content:    "Quelques conseils pratiques.",
		AuthorID:   author.ID,
	}
	require.NoError(t, db.Create(article).Error)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "author_with_articles",
			path:           "/public/articles/user/" + author.ID,
			expectedStatus: http.StatusOK,
			expectedBody:   "conduire-a-douala",
		},
		{
			name:           "author_without_articles_is_404",
			path:           "/public/articles/user/00000000-0000-0000-0000-000000000000",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Aucun article trouvé pour cet utilisateur.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestPublicHandler_GetImage_NotFound(t *testing.T) {
	r, _ := setupPublicRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/images/absent.jpg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Fichier introuvable.")
}
