package crm

import (
	"sort"
	"time"

	"estatecrm/internal/models"
)

// SameDay compares local calendar dates, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TasksOn buckets tasks whose due time falls on the given calendar day.
// Input order is preserved.
func TasksOn(tasks []models.Task, day time.Time) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if SameDay(t.DueAt, day) {
			out = append(out, t)
		}
	}
	return out
}

// TasksUpcoming returns tasks due strictly after now, earliest first.
func TasksUpcoming(tasks []models.Task, now time.Time) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if t.DueAt.After(now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out
}
