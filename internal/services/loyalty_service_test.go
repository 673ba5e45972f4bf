package services

import (
	"testing"

	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestLoyaltyTotal(t *testing.T) {
	svc := NewLoyaltyService(repositories.NewClientRepository(repositories.Seeded()))

	// 250 + 120 + 0 + 480 across the seeded clients.
	assert.Equal(t, 850, svc.Total())
}

func TestLoyaltyAward(t *testing.T) {
	s := repositories.Seeded()
	svc := NewLoyaltyService(repositories.NewClientRepository(s))

	client, err := svc.Award("c1", 50)
	assert.NoError(t, err)
	assert.Equal(t, 300, client.LoyaltyPoints)
	assert.Equal(t, 900, svc.Total())

	_, err = svc.Award("c1", -10)
	assert.EqualError(t, err, "points delta must be non-negative")

	_, err = svc.Award("nope", 10)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
