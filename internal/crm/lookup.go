// Package crm is the pure entity relationship and aggregation layer.
// Every function takes caller-supplied snapshots, holds no state and
// never mutates its inputs, so callers can pass the live collections on
// every request.
package crm

import "estatecrm/internal/models"

// Sentinels returned on a failed lookup. The zero ID marks them as
// unresolved; the name is the literal fallback label the UI renders.
func UnknownUser() models.User {
	return models.User{Name: "Unknown Agent", Role: models.RoleAgent}
}

func UnknownLead() models.Lead {
	return models.Lead{Name: "Unknown Lead"}
}

func UnknownProperty() models.Property {
	return models.Property{Title: "Unknown Property"}
}

func UnknownDeal() models.Deal {
	return models.Deal{}
}

// UserByID resolves an agent reference. A miss (empty id, unknown id or
// empty collection) returns the unknown sentinel, never an error.
func UserByID(users []models.User, id string) (models.User, bool) {
	if id == "" {
		return UnknownUser(), false
	}
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return UnknownUser(), false
}

func LeadByID(leads []models.Lead, id string) (models.Lead, bool) {
	if id == "" {
		return UnknownLead(), false
	}
	for _, l := range leads {
		if l.ID == id {
			return l, true
		}
	}
	return UnknownLead(), false
}

func PropertyByID(properties []models.Property, id string) (models.Property, bool) {
	if id == "" {
		return UnknownProperty(), false
	}
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return UnknownProperty(), false
}

func DealByID(deals []models.Deal, id string) (models.Deal, bool) {
	if id == "" {
		return UnknownDeal(), false
	}
	for _, d := range deals {
		if d.ID == id {
			return d, true
		}
	}
	return UnknownDeal(), false
}

// ResolveProperties maps an id list (e.g. Client.SavedPropertyIDs) to the
// matching properties. Dangling ids are dropped silently, duplicates are
// deduplicated, and input order is preserved.
func ResolveProperties(properties []models.Property, ids []string) []models.Property {
	seen := make(map[string]bool, len(ids))
	out := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := PropertyByID(properties, id); ok {
			out = append(out, p)
		}
	}
	return out
}
