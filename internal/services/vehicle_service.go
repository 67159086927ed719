package services

import (
	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
)

type VehicleService interface {
	CreateModel(model *models.VehicleModel) error
	GetModelByID(id uint) (*models.VehicleModel, error)
	GetActiveModels() ([]models.VehicleModel, error)
	DeactivateModel(id uint) error

	CreateVariant(variant *models.VehicleVariant) error
	GetVariantsByModel(modelID uint) ([]models.VehicleVariant, error)
	DeactivateVariant(id uint) error

	RegisterSerial(variantID uint) (*models.VehicleSerial, error)
	GetSerialsByVariant(variantID uint) ([]models.VehicleSerial, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateModel(model *models.VehicleModel) error {
	model.IsActive = true
	return s.vehicleRepo.CreateModel(model)
}

func (s *vehicleService) GetModelByID(id uint) (*models.VehicleModel, error) {
	return s.vehicleRepo.GetModelByID(id)
}

func (s *vehicleService) GetActiveModels() ([]models.VehicleModel, error) {
	return s.vehicleRepo.GetActiveModels()
}

// DeactivateModel flips the active flag; models are never hard-deleted.
func (s *vehicleService) DeactivateModel(id uint) error {
	model, err := s.vehicleRepo.GetModelByID(id)
	if err != nil {
		return err
	}
	model.IsActive = false
	return s.vehicleRepo.UpdateModel(model)
}

func (s *vehicleService) CreateVariant(variant *models.VehicleVariant) error {
	if _, err := s.vehicleRepo.GetModelByID(variant.ModelID); err != nil {
		return err
	}
	variant.IsActive = true
	return s.vehicleRepo.CreateVariant(variant)
}

func (s *vehicleService) GetVariantsByModel(modelID uint) ([]models.VehicleVariant, error) {
	return s.vehicleRepo.GetVariantsByModelID(modelID)
}

func (s *vehicleService) DeactivateVariant(id uint) error {
	variant, err := s.vehicleRepo.GetVariantByID(id)
	if err != nil {
		return err
	}
	variant.IsActive = false
	return s.vehicleRepo.UpdateVariant(variant)
}

// RegisterSerial generates a new serial number under the variant and
// records the physical unit.
func (s *vehicleService) RegisterSerial(variantID uint) (*models.VehicleSerial, error) {
	if _, err := s.vehicleRepo.GetVariantByID(variantID); err != nil {
		return nil, err
	}
	serial := &models.VehicleSerial{
		SerialNumber: newSerialNumber(),
		VariantID:    variantID,
	}
	if err := s.vehicleRepo.CreateSerial(serial); err != nil {
		return nil, err
	}
	return serial, nil
}

func (s *vehicleService) GetSerialsByVariant(variantID uint) ([]models.VehicleSerial, error) {
	return s.vehicleRepo.GetSerialsByVariantID(variantID)
}
