package models

import "time"

type LeadSource string

const (
	SourceWebsite  LeadSource = "Website"
	SourceWhatsApp LeadSource = "WhatsApp"
	SourcePortal   LeadSource = "Portal"
	SourceReferral LeadSource = "Referral"
	SourceManual   LeadSource = "Manual"
)

// LeadSources lists every source in display order.
var LeadSources = []LeadSource{SourceWebsite, SourceWhatsApp, SourcePortal, SourceReferral, SourceManual}

type LeadType string

const (
	LeadBuyer    LeadType = "Buyer"
	LeadSeller   LeadType = "Seller"
	LeadTenant   LeadType = "Tenant"
	LeadLandlord LeadType = "Landlord"
)

type LeadStatus string

const (
	LeadNew            LeadStatus = "New"
	LeadQualified      LeadStatus = "Qualified"
	LeadVisitScheduled LeadStatus = "Visit Scheduled"
	LeadNegotiation    LeadStatus = "Negotiation"
	LeadClosed         LeadStatus = "Closed"
	LeadLost           LeadStatus = "Lost"
)

var LeadStatuses = []LeadStatus{LeadNew, LeadQualified, LeadVisitScheduled, LeadNegotiation, LeadClosed, LeadLost}

// Lead is an inbound prospect. AssignedTo references a User id and may
// dangle; lookups resolve it to the unknown sentinel.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Source          LeadSource `json:"source"`
	Type            LeadType   `json:"type"`
	Tags            []string   `json:"tags"`
	Score           int        `json:"score"` // 0..100
	Status          LeadStatus `json:"status"`
	BudgetMin       float64    `json:"budget_min"`
	BudgetMax       float64    `json:"budget_max"`
	Locations       []string   `json:"locations"`
	AssignedTo      string     `json:"assigned_to"`
	LastContactedAt time.Time  `json:"last_contacted_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
