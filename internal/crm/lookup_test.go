package crm

import (
	"testing"

	"estatecrm/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLookupMissReturnsSentinel(t *testing.T) {
	users := []models.User{{ID: "u1", Name: "Sarah Wilson", Role: models.RoleAgent}}

	u, ok := UserByID(users, "u404")
	assert.False(t, ok)
	assert.Empty(t, u.ID)
	assert.Equal(t, "Unknown Agent", u.Name)

	// Empty id and empty collection behave the same way.
	u, ok = UserByID(users, "")
	assert.False(t, ok)
	assert.Equal(t, "Unknown Agent", u.Name)

	u, ok = UserByID(nil, "u1")
	assert.False(t, ok)
	assert.Equal(t, "Unknown Agent", u.Name)

	l, ok := LeadByID(nil, "l404")
	assert.False(t, ok)
	assert.Equal(t, "Unknown Lead", l.Name)

	p, ok := PropertyByID(nil, "p404")
	assert.False(t, ok)
	assert.Equal(t, "Unknown Property", p.Title)

	d, ok := DealByID(nil, "d404")
	assert.False(t, ok)
	assert.Empty(t, d.ID)
}

func TestLookupHit(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Sarah Wilson"},
		{ID: "u2", Name: "Mike Chen"},
	}
	u, ok := UserByID(users, "u2")
	assert.True(t, ok)
	assert.Equal(t, "Mike Chen", u.Name)
}

func TestResolvePropertiesDropsDangling(t *testing.T) {
	props := []models.Property{{ID: "p1", Title: "Skyline Apartment 12B"}}

	out := ResolveProperties(props, []string{"p1", "p404"})
	assert.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestResolvePropertiesDedupesInInputOrder(t *testing.T) {
	props := []models.Property{
		{ID: "p1", Title: "A"},
		{ID: "p2", Title: "B"},
		{ID: "p3", Title: "C"},
	}

	out := ResolveProperties(props, []string{"p3", "p1", "p3", "", "p1"})
	assert.Len(t, out, 2)
	assert.Equal(t, "p3", out[0].ID)
	assert.Equal(t, "p1", out[1].ID)
}

func TestResolvePropertiesEmptyInputs(t *testing.T) {
	assert.Empty(t, ResolveProperties(nil, []string{"p1"}))
	assert.Empty(t, ResolveProperties([]models.Property{{ID: "p1"}}, nil))
}
