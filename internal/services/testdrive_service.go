package services

import (
	"errors"
	"log"
	"time"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrSlotTaken           = errors.New("test drive slot already booked")
	ErrInvalidScheduleTime = errors.New("invalid scheduled time")
	ErrTestDriveNotFound   = errors.New("test drive not found")
)

type TestDriveService interface {
	Schedule(customerID, variantID, staffID uint, scheduledTime string) (*models.TestDrive, error)
	UpdateStatus(id uint, status string) error
	GetByStaff(staffID uint) ([]models.TestDrive, error)
	GetByCustomer(customerID uint) ([]models.TestDrive, error)
}

type testDriveService struct {
	testDriveRepo repository.TestDriveRepository
}

func NewTestDriveService(testDriveRepo repository.TestDriveRepository) TestDriveService {
	return &testDriveService{testDriveRepo: testDriveRepo}
}

// Schedule books a test drive slot for a staff member. The slot-conflict
// check is read-then-write, same caveat as the duplicate-payment check:
// two simultaneous requests for the same slot can both pass it.
func (s *testDriveService) Schedule(customerID, variantID, staffID uint, scheduledTime string) (*models.TestDrive, error) {
	if _, err := time.Parse(models.DateTimeLayout, scheduledTime); err != nil {
		return nil, ErrInvalidScheduleTime
	}

	if _, err := s.testDriveRepo.FindScheduledSlot(staffID, scheduledTime); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	testDrive := &models.TestDrive{
		CustomerID:    customerID,
		VariantID:     variantID,
		StaffID:       staffID,
		ScheduledTime: scheduledTime,
		Status:        string(models.TestDriveScheduled),
	}
	if err := s.testDriveRepo.Create(testDrive); err != nil {
		log.Printf("Failed to schedule test drive: %v", err)
		return nil, err
	}
	return testDrive, nil
}

func (s *testDriveService) UpdateStatus(id uint, status string) error {
	testDrive, err := s.testDriveRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTestDriveNotFound
		}
		return err
	}
	testDrive.Status = status
	return s.testDriveRepo.Update(testDrive)
}

func (s *testDriveService) GetByStaff(staffID uint) ([]models.TestDrive, error) {
	return s.testDriveRepo.GetByStaffID(staffID)
}

func (s *testDriveService) GetByCustomer(customerID uint) ([]models.TestDrive, error) {
	return s.testDriveRepo.GetByCustomerID(customerID)
}
