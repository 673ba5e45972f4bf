package models

import "time"

type DealStage string

const (
	StageInquiry     DealStage = "Inquiry"
	StageQualified   DealStage = "Qualified"
	StageVisit       DealStage = "Visit"
	StageNegotiation DealStage = "Negotiation"
	StageLegal       DealStage = "Legal"
	StageClosed      DealStage = "Closed"
)

// DealStages is the pipeline in order. Aggregations iterate this slice so
// every stage shows up in output even with zero deals.
var DealStages = []DealStage{StageInquiry, StageQualified, StageVisit, StageNegotiation, StageLegal, StageClosed}

// ValidStage reports whether s is a member of the pipeline enumeration.
func ValidStage(s DealStage) bool {
	for _, stage := range DealStages {
		if stage == s {
			return true
		}
	}
	return false
}

// Deal links a lead to a property. LeadID and PropertyID may reference
// missing records; lookups degrade to the unknown sentinel.
type Deal struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"lead_id"`
	PropertyID string    `json:"property_id"`
	Stage      DealStage `json:"stage"`
	Value      float64   `json:"value"`
	AgentID    string    `json:"agent_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
