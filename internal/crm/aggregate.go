package crm

import (
	"math"
	"time"

	"estatecrm/internal/models"
)

// StageSummary is one column of the pipeline board.
type StageSummary struct {
	Stage      models.DealStage `json:"stage"`
	Count      int              `json:"count"`
	TotalValue float64          `json:"total_value"`
}

// StageAggregate computes count and value total for a single stage.
func StageAggregate(deals []models.Deal, stage models.DealStage) StageSummary {
	s := StageSummary{Stage: stage}
	for _, d := range deals {
		if d.Stage == stage {
			s.Count++
			s.TotalValue += d.Value
		}
	}
	return s
}

// StageSummaries aggregates deals over the full pipeline, one entry per
// stage in enum order. Stages without deals yield count=0, total=0.
func StageSummaries(deals []models.Deal) []StageSummary {
	out := make([]StageSummary, 0, len(models.DealStages))
	for _, stage := range models.DealStages {
		out = append(out, StageAggregate(deals, stage))
	}
	return out
}

// FunnelStage is one step of the sales funnel, ordered widest first.
type FunnelStage struct {
	Stage      string `json:"stage"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// SalesFunnel fills in percentages relative to the first stage's count.
// A zero base makes every percentage 0 rather than dividing by zero.
func SalesFunnel(stages []FunnelStage) []FunnelStage {
	out := make([]FunnelStage, len(stages))
	copy(out, stages)
	if len(out) == 0 {
		return out
	}
	base := out[0].Count
	for i := range out {
		if base == 0 {
			out[i].Percentage = 0
			continue
		}
		out[i].Percentage = int(math.Round(float64(out[i].Count) / float64(base) * 100))
	}
	return out
}

// LocationStat summarizes one location's market.
type LocationStat struct {
	Location       string  `json:"location"`
	Count          int     `json:"count"`
	AvgPrice       float64 `json:"avg_price"`
	DealsCompleted int     `json:"deals_completed"`
}

// LocationStats groups properties by location in first-seen order and
// joins closed deals back through their property's location.
func LocationStats(properties []models.Property, deals []models.Deal) []LocationStat {
	index := make(map[string]int)
	out := make([]LocationStat, 0)
	totals := make(map[string]float64)
	for _, p := range properties {
		i, ok := index[p.Location]
		if !ok {
			i = len(out)
			index[p.Location] = i
			out = append(out, LocationStat{Location: p.Location})
		}
		out[i].Count++
		totals[p.Location] += p.Price
	}
	for i := range out {
		if out[i].Count > 0 {
			out[i].AvgPrice = totals[out[i].Location] / float64(out[i].Count)
		}
	}
	for _, d := range deals {
		if d.Stage != models.StageClosed {
			continue
		}
		p, ok := PropertyByID(properties, d.PropertyID)
		if !ok {
			continue
		}
		if i, ok := index[p.Location]; ok {
			out[i].DealsCompleted++
		}
	}
	return out
}

// TargetProgress is revenue against target as a percentage. Over-target
// values exceed 100 on purpose; a zero target yields 0.
func TargetProgress(revenue, target float64) float64 {
	if target == 0 {
		return 0
	}
	return revenue / target * 100
}

// AgentPerformance is one row of the agent report.
type AgentPerformance struct {
	Agent       models.User `json:"agent"`
	DealsClosed int         `json:"deals_closed"`
	Revenue     float64     `json:"revenue"`
	Progress    float64     `json:"progress"`
}

// AgentPerformanceStats computes closed revenue and target progress per
// agent, in user collection order. Non-agent roles are skipped.
func AgentPerformanceStats(users []models.User, deals []models.Deal) []AgentPerformance {
	out := make([]AgentPerformance, 0)
	for _, u := range users {
		if u.Role != models.RoleAgent {
			continue
		}
		row := AgentPerformance{Agent: u}
		for _, d := range deals {
			if d.AgentID == u.ID && d.Stage == models.StageClosed {
				row.DealsClosed++
				row.Revenue += d.Value
			}
		}
		row.Progress = TargetProgress(row.Revenue, u.Target)
		out = append(out, row)
	}
	return out
}

// SourceCount is the lead-source distribution entry.
type SourceCount struct {
	Source models.LeadSource `json:"source"`
	Count  int               `json:"count"`
}

// LeadSourceCounts covers every source in enum order, zeroes included.
func LeadSourceCounts(leads []models.Lead) []SourceCount {
	out := make([]SourceCount, 0, len(models.LeadSources))
	for _, src := range models.LeadSources {
		c := SourceCount{Source: src}
		for _, l := range leads {
			if l.Source == src {
				c.Count++
			}
		}
		out = append(out, c)
	}
	return out
}

// LoyaltyTotal sums loyalty points across all clients.
func LoyaltyTotal(clients []models.Client) int {
	total := 0
	for _, c := range clients {
		total += c.LoyaltyPoints
	}
	return total
}

// AddPoints returns the new balance. Delta validation (>= 0) is the
// caller's job; the arithmetic itself stays a pure sum.
func AddPoints(balance, delta int) int {
	return balance + delta
}

// Metrics re-derives the dashboard snapshot from the live collections.
// Degenerate inputs (no leads, no deals) yield zeroes, never NaN.
func Metrics(leads []models.Lead, deals []models.Deal, now time.Time) models.DashboardMetrics {
	var m models.DashboardMetrics
	for _, l := range leads {
		if l.Status == models.LeadNew {
			m.NewLeads++
		}
	}
	var totalValue float64
	closed := 0
	for _, d := range deals {
		totalValue += d.Value
		switch d.Stage {
		case models.StageNegotiation:
			m.DealsInNegotiation++
		case models.StageClosed:
			closed++
			m.TotalRevenue += d.Value
			if d.UpdatedAt.Year() == now.Year() && d.UpdatedAt.Month() == now.Month() {
				m.ClosedDealsThisMonth++
			}
		}
	}
	if len(leads) > 0 {
		m.ConversionRate = int(math.Round(float64(closed) / float64(len(leads)) * 100))
	}
	if len(deals) > 0 {
		m.AverageDealValue = totalValue / float64(len(deals))
	}
	return m
}

// PaymentStats partitions the payment ledger by status.
type PaymentStats struct {
	TotalAmount     float64 `json:"total_amount"`
	CompletedAmount float64 `json:"completed_amount"`
	PendingAmount   float64 `json:"pending_amount"`
	FailedAmount    float64 `json:"failed_amount"`
	CompletedCount  int     `json:"completed_count"`
	PendingCount    int     `json:"pending_count"`
	FailedCount     int     `json:"failed_count"`
}

func SummarizePayments(payments []models.Payment) PaymentStats {
	var s PaymentStats
	for _, p := range payments {
		s.TotalAmount += p.Amount
		switch p.Status {
		case models.PaymentCompleted:
			s.CompletedCount++
			s.CompletedAmount += p.Amount
		case models.PaymentPending:
			s.PendingCount++
			s.PendingAmount += p.Amount
		case models.PaymentFailed:
			s.FailedCount++
			s.FailedAmount += p.Amount
		}
	}
	return s
}
