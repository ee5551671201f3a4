package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doualadrive/backend-go/internal/database/models"
)

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	FindAll() ([]models.Vehicle, error)
	FindByID(id string) (*models.Vehicle, error)
	FindByNameOrBrand(nameOrBrand string) ([]models.Vehicle, error)
	FindByCategory(categoryID string) ([]models.Vehicle, error)
	CreateOrUpdate(vehicle *models.Vehicle) error
	UpdateStatusByID(id, statusID string) (*models.Vehicle, error)
	DeleteByID(id string) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) FindAll() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Preload("Category").Preload("Status").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) FindByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Preload("Category").Preload("Status").First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByNameOrBrand(nameOrBrand string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	pattern := "%" + nameOrBrand + "%"
	err := r.db.Preload("Category").Preload("Status").
		Where("name LIKE ? OR brand LIKE ?", pattern, pattern).
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) FindByCategory(categoryID string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Preload("Category").Preload("Status").
		Where("category_id = ?", categoryID).
		Find(&vehicles).Error
	return vehicles, err
}

// CreateOrUpdate upserts by primary id. An absent id means insert; the
// BeforeCreate hook generates the uuid.
func (r *vehicleRepository) CreateOrUpdate(vehicle *models.Vehicle) error {
	if vehicle.ID == "" {
		return r.db.Create(vehicle).Error
	}
	return r.db.Save(vehicle).Error
}

func (r *vehicleRepository) UpdateStatusByID(id, statusID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	vehicle.StatusID = statusID
	if err := r.db.Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) DeleteByID(id string) error {
	return r.db.Delete(&models.Vehicle{}, "id = ?", id).Error
}

// Repository errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)
