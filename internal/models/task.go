package models

import "time"

type TaskStatus string

const (
	TaskOpen TaskStatus = "Open"
	TaskDone TaskStatus = "Done"
)

// TaskRelation is the discriminant of the polymorphic related entity.
type TaskRelation string

const (
	RelatedLead     TaskRelation = "Lead"
	RelatedDeal     TaskRelation = "Deal"
	RelatedProperty TaskRelation = "Property"
)

var TaskRelations = []TaskRelation{RelatedLead, RelatedDeal, RelatedProperty}

// TaskCategory is stored explicitly, not inferred from the title text.
type TaskCategory string

const (
	CategoryVisit    TaskCategory = "Visit"
	CategoryMeeting  TaskCategory = "Meeting"
	CategoryCall     TaskCategory = "Call"
	CategoryFollowUp TaskCategory = "FollowUp"
	CategoryOther    TaskCategory = "Other"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueAt       time.Time    `json:"due_at"`
	RelatedType TaskRelation `json:"related_type"`
	RelatedID   string       `json:"related_id"`
	AssigneeID  string       `json:"assignee_id"`
	Category    TaskCategory `json:"category"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
