package service

import (
	"log/slog"

	"github.com/doualadrive/backend-go/internal/database/models"
	"github.com/doualadrive/backend-go/internal/database/repository"
)

// VehicleRequest carries a vehicle create-or-update payload. An empty ID
// means insert.
type VehicleRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand" binding:"required"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Color       string  `json:"color" binding:"required"`
	Image       *string `json:"image"`
	Video       *string `json:"video"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	StatusID    string  `json:"status_id" binding:"required,uuid"`
	Features    *string `json:"features"`
	Description *string `json:"description"`
}

// VehicleService defines the interface for vehicle business logic
type VehicleService interface {
	GetAllVehicles() ([]VehicleDTO, error)
	GetVehicleByID(id string) (*VehicleDTO, error)
	GetVehiclesByNameOrBrand(nameOrBrand string) ([]VehicleDTO, error)
	GetVehiclesByCategoryName(categoryName string) ([]VehicleDTO, error)
	CreateOrUpdateVehicle(req VehicleRequest) (*VehicleDTO, error)
	UpdateVehicleStatus(id, statusID string) (*VehicleDTO, error)
	DeleteVehicleByID(id string) error
}

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewVehicleService creates a new vehicle service instance
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *vehicleService) GetAllVehicles() ([]VehicleDTO, error) {
	vehicles, err := s.vehicleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapVehicles(vehicles), nil
}

func (s *vehicleService) GetVehicleByID(id string) (*VehicleDTO, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	dto := toVehicleDTO(vehicle)
	return &dto, nil
}

func (s *vehicleService) GetVehiclesByNameOrBrand(nameOrBrand string) ([]VehicleDTO, error) {
	vehicles, err := s.vehicleRepo.FindByNameOrBrand(nameOrBrand)
	if err != nil {
		return nil, err
	}
	return mapVehicles(vehicles), nil
}

// GetVehiclesByCategoryName resolves the category by exact name over the
// full category list, then filters vehicles by the resolved id.
func (s *vehicleService) GetVehiclesByCategoryName(categoryName string) ([]VehicleDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	var matched *models.Category
	for i := range categories {
		if categories[i].Name == categoryName {
			matched = &categories[i]
			break
		}
	}
	if matched == nil {
		s.logger.Warn("⚠️ [VehicleService] Unknown category name", "category", categoryName)
		return nil, repository.ErrCategoryNotFound
	}

	vehicles, err := s.vehicleRepo.FindByCategory(matched.ID)
	if err != nil {
		return nil, err
	}
	return mapVehicles(vehicles), nil
}

func (s *vehicleService) CreateOrUpdateVehicle(req VehicleRequest) (*VehicleDTO, error) {
	s.logger.Info("🚗 [VehicleService] Creating or updating vehicle", "vehicle_id", req.ID, "name", req.Name)

	vehicle := models.Vehicle{
		ID:          req.ID,
		Name:        req.Name,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
		Color:       req.Color,
		Image:       req.Image,
		Video:       req.Video,
		Price:       req.Price,
		StatusID:    req.StatusID,
		Features:    req.Features,
		Description: req.Description,
	}

	if err := s.vehicleRepo.CreateOrUpdate(&vehicle); err != nil {
		s.logger.Error("❌ [VehicleService] Failed to upsert vehicle", "error", err)
		return nil, err
	}

	// Re-read so the response carries the resolved category and status
	saved, err := s.vehicleRepo.FindByID(vehicle.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ [VehicleService] Vehicle saved", "vehicle_id", saved.ID)
	dto := toVehicleDTO(saved)
	return &dto, nil
}

func (s *vehicleService) UpdateVehicleStatus(id, statusID string) (*VehicleDTO, error) {
	s.logger.Info("🔄 [VehicleService] Updating vehicle status", "vehicle_id", id, "status_id", statusID)

	if _, err := s.vehicleRepo.UpdateStatusByID(id, statusID); err != nil {
		s.logger.Warn("⚠️ [VehicleService] Failed to update vehicle status", "vehicle_id", id, "error", err)
		return nil, err
	}

	saved, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	dto := toVehicleDTO(saved)
	return &dto, nil
}

func (s *vehicleService) DeleteVehicleByID(id string) error {
	s.logger.Info("🗑️ [VehicleService] Deleting vehicle", "vehicle_id", id)
	return s.vehicleRepo.DeleteByID(id)
}

func mapVehicles(vehicles []models.Vehicle) []VehicleDTO {
	dtos := make([]VehicleDTO, 0, len(vehicles))
	for i := range vehicles {
		dtos = append(dtos, toVehicleDTO(&vehicles[i]))
	}
	return dtos
}
