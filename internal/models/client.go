package models

import "time"

// ClientPreferences describes what a client is shopping for. BudgetMin may
// exceed BudgetMax on bad input; matching treats that as an empty range.
type ClientPreferences struct {
	PropertyTypes []PropertyType `json:"property_types"`
	Locations     []string       `json:"locations"`
	BudgetMin     float64        `json:"budget_min"`
	BudgetMax     float64        `json:"budget_max"`
	Amenities     []string       `json:"amenities"`
}

// Client is a converted counterparty. SavedPropertyIDs reference the
// Property collection and may dangle; resolution drops missing ids.
type Client struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Preferences      ClientPreferences `json:"preferences"`
	SavedPropertyIDs []string          `json:"saved_property_ids"`
	LoyaltyPoints    int               `json:"loyalty_points"`
	CreatedAt        time.Time         `json:"created_at"`
}
