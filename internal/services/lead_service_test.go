package services

import (
	"testing"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func newLeadService(s *repositories.Store) *LeadService {
	return NewLeadService(repositories.NewLeadRepository(s), repositories.NewUserRepository(s))
}

func TestLeadSearch(t *testing.T) {
	svc := newLeadService(repositories.Seeded())

	out := svc.List("maria")
	assert.Len(t, out, 1)
	assert.Equal(t, "Maria Rodriguez", out[0].Name)

	// Same match regardless of case, and over email too.
	assert.Len(t, svc.List("MARIA"), 1)
	assert.Len(t, svc.List("okonkwo@"), 1)
	assert.Len(t, svc.List(""), 6)
}

func TestLeadCreateDefaults(t *testing.T) {
	svc := newLeadService(repositories.Seeded())

	lead := svc.Create(models.Lead{Name: "New Prospect", Email: "new@example.com"})
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())

	got, err := svc.GetByID(lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New Prospect", got.Name)
}

func TestLeadAssignUnknownUser(t *testing.T) {
	svc := newLeadService(repositories.Seeded())
	assert.EqualError(t, svc.Assign("l1", "u404"), "assignee not found")
	assert.NoError(t, svc.Assign("l1", "u3"))
}

func TestLeadUpdateStatus(t *testing.T) {
	svc := newLeadService(repositories.Seeded())

	assert.EqualError(t, svc.UpdateStatus("l1", "Bogus"), "invalid lead status")
	assert.NoError(t, svc.UpdateStatus("l1", models.LeadQualified))

	got, err := svc.GetByID("l1")
	assert.NoError(t, err)
	assert.Equal(t, models.LeadQualified, got.Status)
}

func TestLeadAgentNameFallsBack(t *testing.T) {
	svc := newLeadService(repositories.Seeded())

	assert.Equal(t, "Sarah Wilson", svc.AgentName(models.Lead{AssignedTo: "u2"}))
	assert.Equal(t, "Unknown Agent", svc.AgentName(models.Lead{AssignedTo: "gone"}))
}
