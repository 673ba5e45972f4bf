package crm

import (
	"testing"

	"estatecrm/internal/models"

	"github.com/stretchr/testify/assert"
)

func leadFields(l models.Lead) []string {
	return []string{l.Name, l.Email}
}

func sampleLeads() []models.Lead {
	return []models.Lead{
		{ID: "l1", Name: "Maria Rodriguez", Email: "maria.rodriguez@example.com"},
		{ID: "l2", Name: "James Okonkwo", Email: "james.okonkwo@example.com"},
		{ID: "l3", Name: "Priya Sharma", Email: "priya.sharma@example.com"},
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	leads := sampleLeads()
	for _, q := range []string{"maria", "MARIA", "MaRiA"} {
		out := Filter(leads, q, leadFields)
		assert.Len(t, out, 1, "query %q", q)
		assert.Equal(t, "Maria Rodriguez", out[0].Name)
	}
}

func TestFilterMatchesAnyField(t *testing.T) {
	// Query appears only in the email of l2, only in the name of l3.
	out := Filter(sampleLeads(), "okonkwo", leadFields)
	assert.Len(t, out, 1)
	assert.Equal(t, "l2", out[0].ID)

	out = Filter(sampleLeads(), "priya", leadFields)
	assert.Len(t, out, 1)
	assert.Equal(t, "l3", out[0].ID)
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	leads := sampleLeads()
	out := Filter(leads, "", leadFields)
	assert.Equal(t, leads, out)
}

func TestFilterIdempotent(t *testing.T) {
	leads := sampleLeads()
	once := Filter(leads, "example.com", leadFields)
	twice := Filter(once, "example.com", leadFields)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	leads := sampleLeads()
	out := Filter(leads, "a", leadFields) // matches all three
	assert.Equal(t, leads, out)

	// The result is a copy; the caller's slice stays untouched.
	out[0].Name = "mutated"
	assert.Equal(t, "Maria Rodriguez", leads[0].Name)
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(sampleLeads(), "zzz", leadFields))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(500, 100, 1000))
	assert.True(t, InRange(100, 100, 100))
	assert.False(t, InRange(50, 100, 1000))
	// Inverted range is valid-but-empty, not an error.
	assert.False(t, InRange(500, 1000, 100))
}
