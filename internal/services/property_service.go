package services

import (
	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

type PropertyService struct {
	Repo *repositories.PropertyRepository
}

func NewPropertyService(repo *repositories.PropertyRepository) *PropertyService {
	return &PropertyService{Repo: repo}
}

func (s *PropertyService) List(query string) []models.Property {
	return crm.Filter(s.Repo.List(), query, func(p models.Property) []string {
		return []string{p.Title, p.Location}
	})
}

func (s *PropertyService) GetByID(id string) (models.Property, error) {
	return s.Repo.GetByID(id)
}

// MatchingFor returns properties that fit a client's preferences: type,
// location and budget. An inverted budget range matches nothing, which is
// the defined behavior for bad data, not an error.
func (s *PropertyService) MatchingFor(client models.Client) []models.Property {
	prefs := client.Preferences
	out := make([]models.Property, 0)
	for _, p := range s.Repo.List() {
		if len(prefs.PropertyTypes) > 0 && !containsType(prefs.PropertyTypes, p.Type) {
			continue
		}
		if len(prefs.Locations) > 0 && !containsString(prefs.Locations, p.Location) {
			continue
		}
		if !crm.InRange(p.Price, prefs.BudgetMin, prefs.BudgetMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsType(list []models.PropertyType, v models.PropertyType) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
