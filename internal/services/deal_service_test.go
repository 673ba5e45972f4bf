package services

import (
	"testing"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMoveStage(t *testing.T) {
	svc := NewDealService(repositories.NewDealRepository(repositories.Seeded()))

	moved, err := svc.MoveStage("d1", models.StageNegotiation)
	assert.NoError(t, err)
	assert.Equal(t, models.StageNegotiation, moved.Stage)

	_, err = svc.MoveStage("d1", "Bogus")
	assert.EqualError(t, err, "invalid pipeline stage")

	_, err = svc.MoveStage("nope", models.StageClosed)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDealCreate(t *testing.T) {
	svc := NewDealService(repositories.NewDealRepository(repositories.Seeded()))

	_, err := svc.Create(models.Deal{Value: 0})
	assert.EqualError(t, err, "deal value must be positive")

	deal, err := svc.Create(models.Deal{LeadID: "l1", PropertyID: "p1", AgentID: "u2", Value: 500000})
	assert.NoError(t, err)
	assert.NotEmpty(t, deal.ID)
	assert.Equal(t, models.StageInquiry, deal.Stage)
	assert.False(t, deal.UpdatedAt.Before(deal.CreatedAt))
}
