package models

// DashboardMetrics is a derived snapshot, never authoritative; it is
// recomputed from the entity collections on every request.
type DashboardMetrics struct {
	NewLeads             int     `json:"new_leads"`
	DealsInNegotiation   int     `json:"deals_in_negotiation"`
	ClosedDealsThisMonth int     `json:"closed_deals_this_month"`
	TotalRevenue         float64 `json:"total_revenue"`
	ConversionRate       int     `json:"conversion_rate"`
	AverageDealValue     float64 `json:"average_deal_value"`
}
