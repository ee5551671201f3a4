package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

func agencyAggregate() (*models.Configuration, []models.OpeningHour, []models.Rate) {
	configuration := &models.Configuration{
		Name:    "Douala Drive",
		Address: "Douala, Cameroun",
		Phone:   "+237 00 00 00 00",
		Email:   "contact@doualadrive.com",
	}
	openingHours := []models.OpeningHour{
		{Label: "Lundi - Samedi: 08:00 - 18:00"},
		{Label: "Dimanche: Sur rendez-vous"},
	}
	rates := []models.Rate{
		{Title: "Journée", Icon: "sun", Excerpt: "Location à la journée", Price: "25 000 FCFA", Description: "Tarif journalier"},
		{Title: "Semaine", Icon: "calendar", Excerpt: "Location à la semaine", Price: "150 000 FCFA", Description: "Tarif hebdomadaire"},
	}
	return configuration, openingHours, rates
}

func TestConfigurationRepository_CreateOrUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewConfigurationRepository(db)

	configuration, openingHours, rates := agencyAggregate()
	require.NoError(t, repo.CreateOrUpdate(configuration, openingHours, rates))
	assert.NotEmpty(t, configuration.ID)

	aggregate, err := repo.FindByName("Douala Drive")
	require.NoError(t, err)
	assert.Equal(t, configuration.ID, aggregate.Configuration.ID)
	assert.Len(t, aggregate.OpeningHours, 2)
	assert.Len(t, aggregate.Rates, 2)
	for _, hour := range aggregate.OpeningHours {
		assert.NotEmpty(t, hour.ID)
		assert.Equal(t, configuration.ID, hour.ConfigurationID)
	}
}

func TestConfigurationRepository_CreateOrUpdate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewConfigurationRepository(db)

	configuration, openingHours, rates := agencyAggregate()
	require.NoError(t, repo.CreateOrUpdate(configuration, openingHours, rates))

	// Re-submitting the same aggregate updates children in place instead of
	// multiplying rows
	_, againHours, againRates := agencyAggregate()
	againRates[0].Price = "30 000 FCFA"
	require.NoError(t, repo.CreateOrUpdate(configuration, againHours, againRates))

	var hourCount, rateCount int64
	require.NoError(t, db.Model(&models.OpeningHour{}).Count(&hourCount).Error)
	require.NoError(t, db.Model(&models.Rate{}).Count(&rateCount).Error)
	assert.Equal(t, int64(2), hourCount)
	assert.Equal(t, int64(2), rateCount)

	aggregate, err := repo.FindByName("Douala Drive")
	require.NoError(t, err)
	prices := make(map[string]string)
	for _, rate := range aggregate.Rates {
		prices[rate.Title] = rate.Price
	}
	assert.Equal(t, "30 000 FCFA", prices["Journée"])
}

func TestConfigurationRepository_FindByName_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewConfigurationRepository(db)

	_, err := repo.FindByName("Agence fantôme")
	assert.ErrorIs(t, err, repository.ErrConfigurationNotFound)
}

func TestConfigurationRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewConfigurationRepository(db)

	configuration, openingHours, rates := agencyAggregate()
	require.NoError(t, repo.CreateOrUpdate(configuration, openingHours, rates))
	require.NoError(t, repo.DeleteByID(configuration.ID))

	_, err := repo.FindByID(configuration.ID)
	assert.ErrorIs(t, err, repository.ErrConfigurationNotFound)

	// Children are hard-deleted, the parent keeps a soft-delete row
	var hourCount, rateCount, parentCount int64
	require.NoError(t, db.Unscoped().Model(&models.OpeningHour{}).Count(&hourCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Rate{}).Count(&rateCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Configuration{}).Count(&parentCount).Error)
	assert.Equal(t, int64(0), hourCount)
	assert.Equal(t, int64(0), rateCount)
	assert.Equal(t, int64(1), parentCount)
}

func TestConfigurationRepository_DeleteByID_IsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewConfigurationRepository(db)

	configuration, openingHours, rates := agencyAggregate()
	require.NoError(t, repo.CreateOrUpdate(configuration, openingHours, rates))

	// Force the final delete statement to fail; the child deletes must roll
	// back with it
	require.NoError(t, db.Migrator().DropTable(&models.Configuration{}))

	err := repo.DeleteByID(configuration.ID)
	assert.Error(t, err)

	var hourCount int64
	require.NoError(t, db.Model(&models.OpeningHour{}).Count(&hourCount).Error)
	assert.Equal(t, int64(2), hourCount)
}
