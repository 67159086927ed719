package services

import (
	"errors"
	"time"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
)

var ErrInvalidPromotion = errors.New("promotion has invalid dates or discount rate")

type PromotionService interface {
	CreatePromotion(promotion *models.Promotion) error
	GetPromotionByID(id uint) (*models.Promotion, error)
	GetAllPromotions() ([]models.Promotion, error)
	UpdatePromotion(promotion *models.Promotion) error
	DeletePromotion(id uint) error
	AssignToDealer(dealerID, promotionID uint) error
	GetActivePromotions(dealerID uint) ([]models.Promotion, error)
}

type promotionService struct {
	promoRepo repository.PromotionRepository
}

func NewPromotionService(promoRepo repository.PromotionRepository) PromotionService {
	return &promotionService{promoRepo: promoRepo}
}

func (s *promotionService) CreatePromotion(promotion *models.Promotion) error {
	if err := validatePromotion(promotion); err != nil {
		return err
	}
	return s.promoRepo.Create(promotion)
}

func (s *promotionService) GetPromotionByID(id uint) (*models.Promotion, error) {
	return s.promoRepo.GetByID(id)
}

func (s *promotionService) GetAllPromotions() ([]models.Promotion, error) {
	return s.promoRepo.GetAll()
}

func (s *promotionService) UpdatePromotion(promotion *models.Promotion) error {
	if err := validatePromotion(promotion); err != nil {
		return err
	}
	return s.promoRepo.Update(promotion)
}

func (s *promotionService) DeletePromotion(id uint) error {
	return s.promoRepo.Delete(id)
}

func (s *promotionService) AssignToDealer(dealerID, promotionID uint) error {
	if _, err := s.promoRepo.GetByID(promotionID); err != nil {
		return err
	}
	return s.promoRepo.AssignToDealer(dealerID, promotionID)
}

func (s *promotionService) GetActivePromotions(dealerID uint) ([]models.Promotion, error) {
	today := time.Now().Format(models.DateLayout)
	return s.promoRepo.GetActiveByDealerID(dealerID, today)
}

func validatePromotion(promotion *models.Promotion) error {
	if _, err := time.Parse(models.DateLayout, promotion.StartDate); err != nil {
		return ErrInvalidPromotion
	}
	if _, err := time.Parse(models.DateLayout, promotion.EndDate); err != nil {
		return ErrInvalidPromotion
	}
	if promotion.EndDate < promotion.StartDate {
		return ErrInvalidPromotion
	}
	if _, err := parseDiscountRate(promotion.DiscountRate); err != nil {
		return ErrInvalidPromotion
	}
	return nil
}
