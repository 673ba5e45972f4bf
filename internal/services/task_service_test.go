package services

import (
	"testing"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestTaskCreateDefaults(t *testing.T) {
	svc := NewTaskService(repositories.NewTaskRepository(repositories.Seeded()))

	_, err := svc.Create(models.Task{})
	assert.EqualError(t, err, "task title is required")

	task, err := svc.Create(models.Task{
		Title:       "Prepare offer",
		DueAt:       time.Now().Add(24 * time.Hour),
		RelatedType: models.RelatedDeal,
		RelatedID:   "d2",
		AssigneeID:  "u2",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.TaskOpen, task.Status)
	assert.Equal(t, models.CategoryOther, task.Category)
}

func TestTaskForDay(t *testing.T) {
	svc := NewTaskService(repositories.NewTaskRepository(repositories.Seeded()))

	t1, err := svc.GetByID("t1")
	assert.NoError(t, err)

	sameDay := svc.ForDay(t1.DueAt)
	ids := make([]string, 0, len(sameDay))
	for _, task := range sameDay {
		ids = append(ids, task.ID)
	}
	assert.Contains(t, ids, "t1")

	// A date with nothing scheduled yields an empty, non-nil bucket.
	assert.Empty(t, svc.ForDay(t1.DueAt.Add(30*24*time.Hour)))
}

func TestTaskForMonth(t *testing.T) {
	svc := NewTaskService(repositories.NewTaskRepository(repositories.Seeded()))

	t1, err := svc.GetByID("t1")
	assert.NoError(t, err)

	days := svc.ForMonth(t1.DueAt.Year(), t1.DueAt.Month())
	key := t1.DueAt.Local().Format("2006-01-02")
	assert.NotEmpty(t, days[key])

	ids := make([]string, 0)
	for _, task := range days[key] {
		ids = append(ids, task.ID)
	}
	assert.Contains(t, ids, "t1")
}

func TestTaskStatusToggle(t *testing.T) {
	svc := NewTaskService(repositories.NewTaskRepository(repositories.Seeded()))

	assert.EqualError(t, svc.UpdateStatus("t1", "Bogus"), "invalid task status")
	assert.NoError(t, svc.UpdateStatus("t1", models.TaskDone))

	task, err := svc.GetByID("t1")
	assert.NoError(t, err)
	assert.Equal(t, models.TaskDone, task.Status)
}

func TestTaskListByAssignee(t *testing.T) {
	svc := NewTaskService(repositories.NewTaskRepository(repositories.Seeded()))

	for _, task := range svc.List("u3") {
		assert.Equal(t, "u3", task.AssigneeID)
	}
	assert.NotEmpty(t, svc.List("u3"))
}
