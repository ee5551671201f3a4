package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

func TestUserRepository_FindByKeycloakID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &models.User{
		KeycloakID: "kc-123",
		Email:      "client@doualadrive.com",
		Name:       "Aline Fotso",
		Role:       "user",
	}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.FindByKeycloakID("kc-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByKeycloakID("kc-unknown")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByName(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &models.User{
		KeycloakID: "kc-123",
		Email:      "client@doualadrive.com",
		Name:       "Aline Fotso",
		Role:       "user",
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByName("Aline Fotso")
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = repo.FindByName("Personne")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteByID_SoftDeletes(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := &models.User{
		KeycloakID: "kc-123",
		Email:      "client@doualadrive.com",
		Name:       "Aline Fotso",
		Role:       "user",
	}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.DeleteByID(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
