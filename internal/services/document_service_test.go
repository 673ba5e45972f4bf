package services

import (
	"context"
	"strings"
	"testing"

	"estatecrm/internal/models"
	"estatecrm/internal/outbox"
	"estatecrm/internal/pdf"
	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

type captureGenerator struct {
	last pdf.RenderData
}

func (g *captureGenerator) Render(data pdf.RenderData) ([]byte, error) {
	g.last = data
	return []byte("%PDF-stub"), nil
}

func newDocumentService(s *repositories.Store, gen pdf.Generator, disp outbox.Dispatcher) *DocumentService {
	return NewDocumentService(
		repositories.NewTemplateRepository(s),
		repositories.NewDealRepository(s),
		repositories.NewLeadRepository(s),
		repositories.NewPropertyRepository(s),
		gen,
		disp,
	)
}

func TestFillSubstitutesPlaceholders(t *testing.T) {
	s := repositories.Seeded()
	svc := newDocumentService(s, &captureGenerator{}, outbox.NewNopDispatcher())

	tpl := models.DocumentTemplate{Body: "{{client_name}} offers {{deal_value}} for {{property_title}} in {{property_location}}."}
	deal := models.Deal{LeadID: "l1", PropertyID: "p1", Value: 950000}

	got := svc.Fill(tpl, deal)
	assert.Equal(t, "Maria Rodriguez offers $950000 for Skyline Apartment 12B in Downtown.", got)
}

func TestFillFallsBackToUnknownLabels(t *testing.T) {
	s := repositories.Seeded()
	svc := newDocumentService(s, &captureGenerator{}, outbox.NewNopDispatcher())

	tpl := models.DocumentTemplate{Body: "{{client_name}} / {{property_title}}"}
	got := svc.Fill(tpl, models.Deal{LeadID: "l404", PropertyID: "p404", Value: 1})
	assert.Equal(t, "Unknown Lead / Unknown Property", got)
}

func TestGenerateDocument(t *testing.T) {
	s := repositories.Seeded()
	gen := &captureGenerator{}
	disp := outbox.NewNopDispatcher()
	svc := newDocumentService(s, gen, disp)

	data, err := svc.Generate(context.Background(), "tpl2", "d1")
	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), data)

	assert.Equal(t, "Offer Letter", gen.last.Title)
	assert.Equal(t, "d1", gen.last.Reference)
	assert.True(t, strings.Contains(gen.last.Body, "Maria Rodriguez"))

	assert.Len(t, disp.Events, 1)
	assert.Equal(t, outbox.KindDocument, disp.Events[0].Kind)
}

func TestGenerateUnknownTemplateOrDeal(t *testing.T) {
	s := repositories.Seeded()
	svc := newDocumentService(s, &captureGenerator{}, outbox.NewNopDispatcher())

	_, err := svc.Generate(context.Background(), "nope", "d1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = svc.Generate(context.Background(), "tpl1", "nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
