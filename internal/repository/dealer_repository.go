package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type DealerRepository interface {
	Create(dealer *models.Dealer) error
	GetByID(id uint) (*models.Dealer, error)
	GetAll() ([]models.Dealer, error)
	Update(dealer *models.Dealer) error
	Delete(id uint) error
}

type dealerRepository struct {
	db *gorm.DB
}

func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(dealer *models.Dealer) error {
	return r.db.Create(dealer).Error
}

func (r *dealerRepository) GetByID(id uint) (*models.Dealer, error) {
	var dealer models.Dealer
	err := r.db.First(&dealer, id).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepository) GetAll() ([]models.Dealer, error) {
	var dealers []models.Dealer
	err := r.db.Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepository) Update(dealer *models.Dealer) error {
	return r.db.Save(dealer).Error
}

func (r *dealerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Dealer{}, id).Error
}
