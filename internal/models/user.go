package models

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleAgent UserRole = "Agent"
	RoleOwner UserRole = "Owner"
)

var UserRoles = []UserRole{RoleAdmin, RoleAgent, RoleOwner}

// User is a CRM account. Target is the annual revenue target used by the
// agent performance report; zero means no target set.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	Email  string   `json:"email"`
	Target float64  `json:"target,omitempty"`
}
