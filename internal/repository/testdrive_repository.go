package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type TestDriveRepository interface {
	Create(testDrive *models.TestDrive) error
	GetByID(id uint) (*models.TestDrive, error)
	GetByStaffID(staffID uint) ([]models.TestDrive, error)
	GetByCustomerID(customerID uint) ([]models.TestDrive, error)
	// FindScheduledSlot returns the scheduled test drive occupying the
	// staff's time slot, or gorm.ErrRecordNotFound when the slot is free.
	FindScheduledSlot(staffID uint, scheduledTime string) (*models.TestDrive, error)
	Update(testDrive *models.TestDrive) error
}

type testDriveRepository struct {
	db *gorm.DB
}

func NewTestDriveRepository(db *gorm.DB) TestDriveRepository {
	return &testDriveRepository{db: db}
}

func (r *testDriveRepository) Create(testDrive *models.TestDrive) error {
	return r.db.Create(testDrive).Error
}

func (r *testDriveRepository) GetByID(id uint) (*models.TestDrive, error) {
	var testDrive models.TestDrive
	err := r.db.First(&testDrive, id).Error
	if err != nil {
		return nil, err
	}
	return &testDrive, nil
}

func (r *testDriveRepository) GetByStaffID(staffID uint) ([]models.TestDrive, error) {
	var testDrives []models.TestDrive
	err := r.db.Where("staff_id = ?", staffID).Find(&testDrives).Error
	return testDrives, err
}

func (r *testDriveRepository) GetByCustomerID(customerID uint) ([]models.TestDrive, error) {
	var testDrives []models.TestDrive
	err := r.db.Where("customer_id = ?", customerID).Find(&testDrives).Error
	return testDrives, err
}

func (r *testDriveRepository) FindScheduledSlot(staffID uint, scheduledTime string) (*models.TestDrive, error) {
	var testDrive models.TestDrive
	err := r.db.Where("staff_id = ? AND scheduled_time = ? AND status = ?", staffID, scheduledTime, string(models.TestDriveScheduled)).First(&testDrive).Error
	if err != nil {
		return nil, err
	}
	return &testDrive, nil
}

func (r *testDriveRepository) Update(testDrive *models.TestDrive) error {
	return r.db.Save(testDrive).Error
}
