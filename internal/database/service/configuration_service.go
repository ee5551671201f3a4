package service

import (
	"log/slog"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

// ConfigurationRequest carries a configuration upsert payload with its
// nested children.
type ConfigurationRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	OpeningHours []struct {
		Label string `json:"label" binding:"required"`
	} `json:"openingHours" binding:"required"`
	Rates []struct {
		Title       string `json:"title" binding:"required"`
		Icon        string `json:"icon" binding:"required"`
		Excerpt     string `json:"excerpt" binding:"required"`
		Price       string `json:"price" binding:"required"`
		Description string `json:"description" binding:"required"`
	} `json:"rates" binding:"required"`
}

// ConfigurationService defines the interface for configuration business logic
type ConfigurationService interface {
	GetAllConfigurations() ([]ConfigurationDTO, error)
	GetConfigurationByName(name string) (*ConfigurationDTO, error)
	CreateOrUpdateConfiguration(req ConfigurationRequest) (*ConfigurationDTO, error)
	DeleteConfiguration(id string) error
}

type configurationService struct {
	configurationRepo repository.ConfigurationRepository
	logger            *slog.Logger
}

// NewConfigurationService creates a new configuration service instance
func NewConfigurationService(
	configurationRepo repository.ConfigurationRepository,
	logger *slog.Logger,
) ConfigurationService {
	return &configurationService{
		configurationRepo: configurationRepo,
		logger:            logger,
	}
}

func (s *configurationService) GetAllConfigurations() ([]ConfigurationDTO, error) {
	aggregates, err := s.configurationRepo.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := make([]ConfigurationDTO, 0, len(aggregates))
	for i := range aggregates {
		dtos = append(dtos, toConfigurationDTO(
			&aggregates[i].Configuration,
			aggregates[i].OpeningHours,
			aggregates[i].Rates,
		))
	}
	return dtos, nil
}

func (s *configurationService) GetConfigurationByName(name string) (*ConfigurationDTO, error) {
	aggregate, err := s.configurationRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	dto := toConfigurationDTO(&aggregate.Configuration, aggregate.OpeningHours, aggregate.Rates)
	return &dto, nil
}

// CreateOrUpdateConfiguration upserts the aggregate atomically, then
// re-reads it by name so the response carries the generated child ids.
func (s *configurationService) CreateOrUpdateConfiguration(req ConfigurationRequest) (*ConfigurationDTO, error) {
	s.logger.Info("🏢 [ConfigurationService] Creating or updating configuration", "name", req.Name)

	configuration := models.Configuration{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	openingHours := make([]models.OpeningHour, 0, len(req.OpeningHours))
	for _, hour := range req.OpeningHours {
		openingHours = append(openingHours, models.OpeningHour{Label: hour.Label})
	}

	rates := make([]models.Rate, 0, len(req.Rates))
	for _, rate := range req.Rates {
		rates = append(rates, models.Rate{
			Title:       rate.Title,
			Icon:        rate.Icon,
			Excerpt:     rate.Excerpt,
			Price:       rate.Price,
			Description: rate.Description,
		})
	}

	if err := s.configurationRepo.CreateOrUpdate(&configuration, openingHours, rates); err != nil {
		s.logger.Error("❌ [ConfigurationService] Failed to upsert configuration", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ConfigurationService] Configuration saved", "configuration_id", configuration.ID)
	return s.GetConfigurationByName(configuration.Name)
}

func (s *configurationService) DeleteConfiguration(id string) error {
	s.logger.Info("🗑️ [ConfigurationService] Deleting configuration", "configuration_id", id)

	if _, err := s.configurationRepo.FindByID(id); err != nil {
		return err
	}
	return s.configurationRepo.DeleteByID(id)
}
