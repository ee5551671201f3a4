package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

func newArticleService(t *testing.T) (service.ArticleService, *gorm.DB) {
	db := setupServiceDB(t)
	return service.NewArticleService(
		repository.NewArticleRepository(db),
		repository.NewTagRepository(db),
		testLogger(),
	), db
}

func articleServiceFixtures(t *testing.T, db *gorm.DB) (string, string, string, []models.Tag) {
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
	tags := []models.Tag{{Name: "Conseil"}, {Name: "Aventure"}}
	require.NoError(t, db.Create(&tags).Error)

	return category.ID, status.ID, author.ID, tags
}

func TestArticleService_CreateOrUpdateArticle(t *testing.T) {
	svc, db := newArticleService(t)
	categoryID, statusID, authorID, tags := articleServiceFixtures(t, db)

	dto, err := svc.CreateOrUpdateArticle(service.ArticleRequest{
		Title:      "Conduire à Douala",
		Slug:       "conduire-a-douala",
		CategoryID: categoryID,
		StatusID:   statusID,
		Content:    "Quelques conseils pratiques.",
		AuthorID:   authorID,
		Tags:       []string{tags[0].ID, tags[1].ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Conseils", dto.Category.Name)
	assert.Equal(t, "Publié", dto.Status.Name)
	assert.Equal(t, "Jean Mbarga", dto.Author.Name)
	assert.Len(t, dto.Tags, 2)
}

func TestArticleService_CreateOrUpdateArticle_UnknownTags(t *testing.T) {
	svc, db := newArticleService(t)
	categoryID, statusID, authorID, tags := articleServiceFixtures(t, db)

	_, err := svc.CreateOrUpdateArticle(service.ArticleRequest{
		Title:      "Conduire à Douala",
		Slug:       "conduire-a-douala",
		CategoryID: categoryID,
		StatusID:   statusID,
		Content:    "Quelques conseils pratiques.",
		AuthorID:   authorID,
		Tags:       []string{tags[0].ID, "00000000-0000-0000-0000-000000000000"},
	})
	assert.ErrorIs(t, err, service.ErrUnknownTags)

	// The check happens before any write
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Article{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestArticleService_GetArticleBySlug_NotFound(t *testing.T) {
	svc, _ := newArticleService(t)

	_, err := svc.GetArticleBySlug("absent")
	assert.ErrorIs(t, err, repository.ErrArticleNotFound)
}
