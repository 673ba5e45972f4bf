package repositories

import (
	"testing"

	"estatecrm/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeededReferentialIntegrity(t *testing.T) {
	s := Seeded()
	leads := NewLeadRepository(s)
	props := NewPropertyRepository(s)
	users := NewUserRepository(s)
	deals := NewDealRepository(s)

	for _, d := range deals.List() {
		_, err := leads.GetByID(d.LeadID)
		assert.NoError(t, err, "deal %s lead", d.ID)
		_, err = props.GetByID(d.PropertyID)
		assert.NoError(t, err, "deal %s property", d.ID)
		_, err = users.GetByID(d.AgentID)
		assert.NoError(t, err, "deal %s agent", d.ID)
		assert.True(t, models.ValidStage(d.Stage))
		assert.Greater(t, d.Value, 0.0)
		assert.False(t, d.UpdatedAt.Before(d.CreatedAt))
	}
}

func TestSeededKeepsOneDanglingSavedProperty(t *testing.T) {
	s := Seeded()
	clients := NewClientRepository(s)
	props := NewPropertyRepository(s)

	// The demo data deliberately keeps one stale saved-property id so
	// graceful degradation stays exercised end to end.
	dangling := 0
	for _, c := range clients.List() {
		for _, id := range c.SavedPropertyIDs {
			if _, err := props.GetByID(id); err != nil {
				dangling++
			}
		}
		assert.GreaterOrEqual(t, c.LoyaltyPoints, 0)
	}
	assert.Equal(t, 1, dangling)
}

func TestGetByIDNotFound(t *testing.T) {
	s := Seeded()

	_, err := NewLeadRepository(s).GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewDealRepository(s).GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewPropertyRepository(s).GetByID("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStage(t *testing.T) {
	s := Seeded()
	deals := NewDealRepository(s)

	before, err := deals.GetByID("d1")
	assert.NoError(t, err)
	assert.Equal(t, models.StageInquiry, before.Stage)

	moved, err := deals.UpdateStage("d1", models.StageQualified)
	assert.NoError(t, err)
	assert.Equal(t, models.StageQualified, moved.Stage)
	assert.True(t, moved.UpdatedAt.After(before.UpdatedAt))

	after, err := deals.GetByID("d1")
	assert.NoError(t, err)
	assert.Equal(t, models.StageQualified, after.Stage)

	_, err = deals.UpdateStage("nope", models.StageClosed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	s := Seeded()
	leads := NewLeadRepository(s)

	snapshot := leads.List()
	snapshot[0].Name = "mutated"

	fresh := leads.List()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestSetPoints(t *testing.T) {
	s := Seeded()
	clients := NewClientRepository(s)

	assert.NoError(t, clients.SetPoints("c1", 300))
	c, err := clients.GetByID("c1")
	assert.NoError(t, err)
	assert.Equal(t, 300, c.LoyaltyPoints)

	assert.ErrorIs(t, clients.SetPoints("nope", 1), ErrNotFound)
}
