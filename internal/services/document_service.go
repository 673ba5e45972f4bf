package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/outbox"
	"estatecrm/internal/pdf"
	"estatecrm/internal/repositories"
)

type DocumentService struct {
	Templates  *repositories.TemplateRepository
	DealRepo   *repositories.DealRepository
	LeadRepo   *repositories.LeadRepository
	PropRepo   *repositories.PropertyRepository
	Generator  pdf.Generator
	Dispatcher outbox.Dispatcher
}

func NewDocumentService(
	templates *repositories.TemplateRepository,
	dealRepo *repositories.DealRepository,
	leadRepo *repositories.LeadRepository,
	propRepo *repositories.PropertyRepository,
	generator pdf.Generator,
	dispatcher outbox.Dispatcher,
) *DocumentService {
	return &DocumentService{
		Templates:  templates,
		DealRepo:   dealRepo,
		LeadRepo:   leadRepo,
		PropRepo:   propRepo,
		Generator:  generator,
		Dispatcher: dispatcher,
	}
}

func (s *DocumentService) List() []models.DocumentTemplate {
	return s.Templates.List()
}

// Fill substitutes template placeholders from the deal's resolved joins.
// Dangling references fill in as the "Unknown …" labels instead of
// failing the generation.
func (s *DocumentService) Fill(tpl models.DocumentTemplate, deal models.Deal) string {
	lead, _ := crm.LeadByID(s.LeadRepo.List(), deal.LeadID)
	prop, _ := crm.PropertyByID(s.PropRepo.List(), deal.PropertyID)

	r := strings.NewReplacer(
		"{{client_name}}", lead.Name,
		"{{property_title}}", prop.Title,
		"{{property_location}}", prop.Location,
		"{{deal_value}}", fmt.Sprintf("$%.0f", deal.Value),
	)
	return r.Replace(tpl.Body)
}

// Generate renders a template against a deal and returns PDF bytes.
func (s *DocumentService) Generate(ctx context.Context, templateID, dealID string) ([]byte, error) {
	tpl, err := s.Templates.GetByID(templateID)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	deal, err := s.DealRepo.GetByID(dealID)
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}

	data, err := s.Generator.Render(pdf.RenderData{
		Title:     tpl.Name,
		Kind:      string(tpl.Kind),
		Reference: deal.ID,
		Body:      s.Fill(tpl, deal),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	_ = s.Dispatcher.Dispatch(ctx, outbox.Event{
		Kind:    outbox.KindDocument,
		To:      deal.ID,
		Subject: fmt.Sprintf("%s generated", tpl.Name),
	})
	return data, nil
}
