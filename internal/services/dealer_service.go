package services

import (
	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
)

type DealerService interface {
	CreateDealer(dealer *models.Dealer) error
	GetDealerByID(id uint) (*models.Dealer, error)
	GetAllDealers() ([]models.Dealer, error)
	UpdateDealer(dealer *models.Dealer) error
	DeleteDealer(id uint) error
}

type dealerService struct {
	dealerRepo repository.DealerRepository
}

func NewDealerService(dealerRepo repository.DealerRepository) DealerService {
	return &dealerService{dealerRepo: dealerRepo}
}

func (s *dealerService) CreateDealer(dealer *models.Dealer) error {
	return s.dealerRepo.Create(dealer)
}

func (s *dealerService) GetDealerByID(id uint) (*models.Dealer, error) {
	return s.dealerRepo.GetByID(id)
}

func (s *dealerService) GetAllDealers() ([]models.Dealer, error) {
	return s.dealerRepo.GetAll()
}

func (s *dealerService) UpdateDealer(dealer *models.Dealer) error {
	return s.dealerRepo.Update(dealer)
}

func (s *dealerService) DeleteDealer(id uint) error {
	return s.dealerRepo.Delete(id)
}
