package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// ConfigurationAggregate is a configuration together with its owned
// opening-hour and rate children.
type ConfigurationAggregate struct {
	Configuration models.Configuration
	OpeningHours  []models.OpeningHour
	Rates         []models.Rate
}

// ConfigurationRepository defines the interface for configuration data
// operations. The multi-step aggregate write and delete run inside a single
// transaction: either the whole aggregate is persisted or nothing is.
type ConfigurationRepository interface {
	FindAll() ([]ConfigurationAggregate, error)
	FindByID(id string) (*models.Configuration, error)
	FindByName(name string) (*ConfigurationAggregate, error)
	CreateOrUpdate(configuration *models.Configuration, openingHours []models.OpeningHour, rates []models.Rate) error
	DeleteByID(id string) error
}

type configurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository creates a new configuration repository instance
func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

func (r *configurationRepository) FindAll() ([]ConfigurationAggregate, error) {
	var configurations []models.Configuration
	if err := r.db.Find(&configurations).Error; err != nil {
		return nil, err
	}

	aggregates := make([]ConfigurationAggregate, 0, len(configurations))
	for _, configuration := range configurations {
		aggregate, err := r.loadChildren(configuration)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, *aggregate)
	}
	return aggregates, nil
}

func (r *configurationRepository) FindByID(id string) (*models.Configuration, error) {
	var configuration models.Configuration
	err := r.db.First(&configuration, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigurationNotFound
		}
		return nil, err
	}
	return &configuration, nil
}

func (r *configurationRepository) FindByName(name string) (*ConfigurationAggregate, error) {
	var configuration models.Configuration
	err := r.db.First(&configuration, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigurationNotFound
		}
		return nil, err
	}
	return r.loadChildren(configuration)
}

func (r *configurationRepository) loadChildren(configuration models.Configuration) (*ConfigurationAggregate, error) {
	var openingHours []models.OpeningHour
	if err := r.db.Where("configuration_id = ?", configuration.ID).Find(&openingHours).Error; err != nil {
		return nil, err
	}

	var rates []models.Rate
	if err := r.db.Where("configuration_id = ?", configuration.ID).Find(&rates).Error; err != nil {
		return nil, err
	}

	return &ConfigurationAggregate{
		Configuration: configuration,
		OpeningHours:  openingHours,
		Rates:         rates,
	}, nil
}

// CreateOrUpdate upserts the parent, then bulk-upserts the children keyed by
// their (configuration, label/title) unique pairs. Duplicate children update
// in place, so re-submitting the same aggregate never multiplies rows.
func (r *configurationRepository) CreateOrUpdate(configuration *models.Configuration, openingHours []models.OpeningHour, rates []models.Rate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if configuration.ID == "" {
			err = tx.Create(configuration).Error
		} else {
			err = tx.Save(configuration).Error
		}
		if err != nil {
			return err
		}

		for i := range openingHours {
			openingHours[i].ConfigurationID = configuration.ID
		}
		if len(openingHours) > 0 {
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "configuration_id"}, {Name: "label"}},
				DoUpdates: clause.AssignmentColumns([]string{"label"}),
			}).Create(&openingHours).Error
			if err != nil {
				return err
			}
		}

		for i := range rates {
			rates[i].ConfigurationID = configuration.ID
		}
		if len(rates) > 0 {
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "configuration_id"}, {Name: "title"}},
				DoUpdates: clause.AssignmentColumns([]string{"icon", "excerpt", "price", "description"}),
			}).Create(&rates).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteByID removes children first, then the parent. Children are
// hard-deleted; the parent row keeps its soft-delete timestamp.
func (r *configurationRepository) DeleteByID(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("configuration_id = ?", id).Delete(&models.OpeningHour{}).Error; err != nil {
			return err
		}
		if err := tx.Where("configuration_id = ?", id).Delete(&models.Rate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Configuration{}, "id = ?", id).Error
	})
}

// Repository errors
var (
	ErrConfigurationNotFound = errors.New("configuration not found")
)
