package services

import (
	"errors"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

type LoyaltyService struct {
	Repo *repositories.ClientRepository
}

func NewLoyaltyService(repo *repositories.ClientRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

// Total is the program-wide point balance shown on the loyalty page.
func (s *LoyaltyService) Total() int {
	return crm.LoyaltyTotal(s.Repo.List())
}

// Award adds referral points to a client. Negative deltas are rejected
// here, at the caller side; the balance arithmetic stays pure.
func (s *LoyaltyService) Award(clientID string, delta int) (models.Client, error) {
	if delta < 0 {
		return models.Client{}, errors.New("points delta must be non-negative")
	}
	client, err := s.Repo.GetByID(clientID)
	if err != nil {
		return models.Client{}, err
	}
	balance := crm.AddPoints(client.LoyaltyPoints, delta)
	if err := s.Repo.SetPoints(clientID, balance); err != nil {
		return models.Client{}, err
	}
	client.LoyaltyPoints = balance
	return client, nil
}
