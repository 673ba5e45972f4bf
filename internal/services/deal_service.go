package services

import (
	"errors"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/google/uuid"
)

type DealService struct {
	Repo *repositories.DealRepository
}

func NewDealService(repo *repositories.DealRepository) *DealService {
	return &DealService{Repo: repo}
}

func (s *DealService) List() []models.Deal {
	return s.Repo.List()
}

func (s *DealService) GetByID(id string) (models.Deal, error) {
	return s.Repo.GetByID(id)
}

func (s *DealService) Create(deal models.Deal) (models.Deal, error) {
	if deal.Value <= 0 {
		return models.Deal{}, errors.New("deal value must be positive")
	}
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	if deal.Stage == "" {
		deal.Stage = models.StageInquiry
	}
	if !models.ValidStage(deal.Stage) {
		return models.Deal{}, errors.New("invalid pipeline stage")
	}
	now := time.Now()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now
	s.Repo.Create(deal)
	return deal, nil
}

// MoveStage is the kanban drag: any member of the pipeline enumeration is
// a legal target, last write wins.
func (s *DealService) MoveStage(id string, to models.DealStage) (models.Deal, error) {
	if !models.ValidStage(to) {
		return models.Deal{}, errors.New("invalid pipeline stage")
	}
	return s.Repo.UpdateStage(id, to)
}
