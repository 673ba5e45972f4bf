package services

import (
	"time"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

// ReportService computes every derived view: dashboard metrics, the
// pipeline board, the sales funnel, location and agent statistics. All
// math lives in the crm package; this service only supplies snapshots
// and resolves labels for display.
type ReportService struct {
	LeadRepo *repositories.LeadRepository
	DealRepo *repositories.DealRepository
	PropRepo *repositories.PropertyRepository
	UserRepo *repositories.UserRepository
}

func NewReportService(
	leadRepo *repositories.LeadRepository,
	dealRepo *repositories.DealRepository,
	propRepo *repositories.PropertyRepository,
	userRepo *repositories.UserRepository,
) *ReportService {
	return &ReportService{LeadRepo: leadRepo, DealRepo: dealRepo, PropRepo: propRepo, UserRepo: userRepo}
}

func (s *ReportService) Dashboard() models.DashboardMetrics {
	return crm.Metrics(s.LeadRepo.List(), s.DealRepo.List(), time.Now())
}

// DealCard is a pipeline card with foreign keys resolved to labels.
type DealCard struct {
	Deal          models.Deal `json:"deal"`
	LeadName      string      `json:"lead_name"`
	PropertyTitle string      `json:"property_title"`
	AgentName     string      `json:"agent_name"`
}

// StageColumn is one kanban column: the stage summary plus its cards.
type StageColumn struct {
	crm.StageSummary
	Deals []DealCard `json:"deals"`
}

// Pipeline builds the board. Every stage appears in enum order, empty
// columns included; dangling references render as "Unknown …" labels.
func (s *ReportService) Pipeline() []StageColumn {
	deals := s.DealRepo.List()
	leads := s.LeadRepo.List()
	props := s.PropRepo.List()
	users := s.UserRepo.List()

	out := make([]StageColumn, 0, len(models.DealStages))
	for _, summary := range crm.StageSummaries(deals) {
		col := StageColumn{StageSummary: summary, Deals: make([]DealCard, 0, summary.Count)}
		for _, d := range deals {
			if d.Stage != summary.Stage {
				continue
			}
			lead, _ := crm.LeadByID(leads, d.LeadID)
			prop, _ := crm.PropertyByID(props, d.PropertyID)
			agent, _ := crm.UserByID(users, d.AgentID)
			col.Deals = append(col.Deals, DealCard{
				Deal:          d,
				LeadName:      lead.Name,
				PropertyTitle: prop.Title,
				AgentName:     agent.Name,
			})
		}
		out = append(out, col)
	}
	return out
}

// Funnel derives the conversion funnel from lead statuses. Each step
// counts leads that reached at least that point of the journey, so the
// counts are non-increasing by construction.
func (s *ReportService) Funnel() []crm.FunnelStage {
	leads := s.LeadRepo.List()

	reached := func(statuses ...models.LeadStatus) int {
		n := 0
		for _, l := range leads {
			for _, st := range statuses {
				if l.Status == st {
					n++
					break
				}
			}
		}
		return n
	}

	stages := []crm.FunnelStage{
		{Stage: "Leads Generated", Count: len(leads)},
		{Stage: "Qualified Leads", Count: reached(models.LeadQualified, models.LeadVisitScheduled, models.LeadNegotiation, models.LeadClosed)},
		{Stage: "Property Visits", Count: reached(models.LeadVisitScheduled, models.LeadNegotiation, models.LeadClosed)},
		{Stage: "Negotiations", Count: reached(models.LeadNegotiation, models.LeadClosed)},
		{Stage: "Deals Closed", Count: reached(models.LeadClosed)},
	}
	return crm.SalesFunnel(stages)
}

func (s *ReportService) Locations() []crm.LocationStat {
	return crm.LocationStats(s.PropRepo.List(), s.DealRepo.List())
}

func (s *ReportService) Agents() []crm.AgentPerformance {
	return crm.AgentPerformanceStats(s.UserRepo.List(), s.DealRepo.List())
}

func (s *ReportService) LeadSources() []crm.SourceCount {
	return crm.LeadSourceCounts(s.LeadRepo.List())
}
