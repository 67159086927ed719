package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	CreateModel(model *models.VehicleModel) error
	GetModelByID(id uint) (*models.VehicleModel, error)
	GetActiveModels() ([]models.VehicleModel, error)
	UpdateModel(model *models.VehicleModel) error

	CreateVariant(variant *models.VehicleVariant) error
	GetVariantByID(id uint) (*models.VehicleVariant, error)
	GetVariantsByModelID(modelID uint) ([]models.VehicleVariant, error)
	UpdateVariant(variant *models.VehicleVariant) error

	CreateSerial(serial *models.VehicleSerial) error
	GetSerial(serialNumber string) (*models.VehicleSerial, error)
	GetSerialsByVariantID(variantID uint) ([]models.VehicleSerial, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) CreateModel(model *models.VehicleModel) error {
	return r.db.Create(model).Error
}

func (r *vehicleRepository) GetModelByID(id uint) (*models.VehicleModel, error) {
	var model models.VehicleModel
	err := r.db.First(&model, id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *vehicleRepository) GetActiveModels() ([]models.VehicleModel, error) {
	var vehicleModels []models.VehicleModel
	err := r.db.Where("is_active = ?", true).Find(&vehicleModels).Error
	return vehicleModels, err
}

func (r *vehicleRepository) UpdateModel(model *models.VehicleModel) error {
	return r.db.Save(model).Error
}

func (r *vehicleRepository) CreateVariant(variant *models.VehicleVariant) error {
	return r.db.Create(variant).Error
}

func (r *vehicleRepository) GetVariantByID(id uint) (*models.VehicleVariant, error) {
	var variant models.VehicleVariant
	err := r.db.First(&variant, id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *vehicleRepository) GetVariantsByModelID(modelID uint) ([]models.VehicleVariant, error) {
	var variants []models.VehicleVariant
	err := r.db.Where("model_id = ?", modelID).Find(&variants).Error
	return variants, err
}

func (r *vehicleRepository) UpdateVariant(variant *models.VehicleVariant) error {
	return r.db.Save(variant).Error
}

func (r *vehicleRepository) CreateSerial(serial *models.VehicleSerial) error {
	return r.db.Create(serial).Error
}

func (r *vehicleRepository) GetSerial(serialNumber string) (*models.VehicleSerial, error) {
	var serial models.VehicleSerial
	err := r.db.Where("serial_number = ?", serialNumber).First(&serial).Error
	if err != nil {
		return nil, err
	}
	return &serial, nil
}

func (r *vehicleRepository) GetSerialsByVariantID(variantID uint) ([]models.VehicleSerial, error) {
	var serials []models.VehicleSerial
	err := r.db.Where("variant_id = ?", variantID).Find(&serials).Error
	return serials, err
}
