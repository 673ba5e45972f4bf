package services

import (
	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

type ClientService struct {
	Repo     *repositories.ClientRepository
	PropRepo *repositories.PropertyRepository
}

func NewClientService(clientRepo *repositories.ClientRepository, propRepo *repositories.PropertyRepository) *ClientService {
	return &ClientService{Repo: clientRepo, PropRepo: propRepo}
}

func (s *ClientService) List(query string) []models.Client {
	return crm.Filter(s.Repo.List(), query, func(c models.Client) []string {
		return []string{c.Name, c.Email}
	})
}

func (s *ClientService) GetByID(id string) (models.Client, error) {
	return s.Repo.GetByID(id)
}

// SavedProperties resolves the client's saved list. Dangling ids are
// dropped, so a stale reference never breaks the page.
func (s *ClientService) SavedProperties(id string) ([]models.Property, error) {
	client, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return crm.ResolveProperties(s.PropRepo.List(), client.SavedPropertyIDs), nil
}
