package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(promotion *models.Promotion) error
	GetByID(id uint) (*models.Promotion, error)
	GetAll() ([]models.Promotion, error)
	Update(promotion *models.Promotion) error
	Delete(id uint) error
	AssignToDealer(dealerID, promotionID uint) error
	// GetActiveByDealerID returns the dealer's promotions whose date window
	// contains today, ordered by id so stacking is deterministic.
	GetActiveByDealerID(dealerID uint, today string) ([]models.Promotion, error)
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *promotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.First(&promotion, id).Error
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) GetAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Save(promotion).Error
}

func (r *promotionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Promotion{}, id).Error
}

func (r *promotionRepository) AssignToDealer(dealerID, promotionID uint) error {
	link := models.DealerPromotion{DealerID: dealerID, PromotionID: promotionID}
	return r.db.Create(&link).Error
}

func (r *promotionRepository) GetActiveByDealerID(dealerID uint, today string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.
		Joins("JOIN dealer_promotions ON dealer_promotions.promotion_id = promotions.id").
		Where("dealer_promotions.dealer_id = ? AND promotions.start_date <= ? AND promotions.end_date >= ?", dealerID, today, today).
		Order("promotions.id").
		Find(&promotions).Error
	return promotions, err
}
