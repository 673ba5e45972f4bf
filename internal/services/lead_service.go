package services

import (
	"errors"
	"time"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/google/uuid"
)

type LeadService struct {
	Repo     *repositories.LeadRepository
	UserRepo *repositories.UserRepository
}

func NewLeadService(leadRepo *repositories.LeadRepository, userRepo *repositories.UserRepository) *LeadService {
	return &LeadService{Repo: leadRepo, UserRepo: userRepo}
}

// List filters the collection by a case-insensitive search over name and
// email, same semantics on every list page.
func (s *LeadService) List(query string) []models.Lead {
	return crm.Filter(s.Repo.List(), query, func(l models.Lead) []string {
		return []string{l.Name, l.Email}
	})
}

func (s *LeadService) GetByID(id string) (models.Lead, error) {
	return s.Repo.GetByID(id)
}

func (s *LeadService) Create(lead models.Lead) models.Lead {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	s.Repo.Create(lead)
	return lead
}

func (s *LeadService) UpdateStatus(id string, to models.LeadStatus) error {
	valid := false
	for _, st := range models.LeadStatuses {
		if st == to {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New("invalid lead status")
	}
	return s.Repo.UpdateStatus(id, to)
}

// Assign changes the owning agent. The target user must exist; the lead
// collection itself tolerates dangling assignees from older data.
func (s *LeadService) Assign(id, userID string) error {
	if _, err := s.UserRepo.GetByID(userID); err != nil {
		return errors.New("assignee not found")
	}
	return s.Repo.UpdateAssignee(id, userID)
}

// AgentName resolves the assigned user for display, falling back to the
// unknown sentinel label.
func (s *LeadService) AgentName(lead models.Lead) string {
	u, _ := crm.UserByID(s.UserRepo.List(), lead.AssignedTo)
	return u.Name
}
