package services

import (
	"errors"
	"time"

	"estatecrm/internal/crm"
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"

	"github.com/google/uuid"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	List(assigneeID string) []models.Task
	ForDay(day time.Time) []models.Task
	ForMonth(year int, month time.Month) map[string][]models.Task
	Upcoming(now time.Time) []models.Task
	GetByID(id string) (models.Task, error)
	Create(task models.Task) (models.Task, error)
	UpdateStatus(id string, to models.TaskStatus) error
}

type taskService struct {
	repo *repositories.TaskRepository
}

func NewTaskService(repo *repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) List(assigneeID string) []models.Task {
	tasks := s.repo.List()
	if assigneeID == "" {
		return tasks
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssigneeID == assigneeID {
			out = append(out, t)
		}
	}
	return out
}

// ForDay buckets tasks on a local calendar date; the calendar grid and
// the "today" panel share these semantics.
func (s *taskService) ForDay(day time.Time) []models.Task {
	return crm.TasksOn(s.repo.List(), day)
}

// ForMonth groups a month's tasks by their due date. Days without tasks
// are absent; the calendar grid renders those as empty cells.
func (s *taskService) ForMonth(year int, month time.Month) map[string][]models.Task {
	out := make(map[string][]models.Task)
	for _, t := range s.repo.List() {
		due := t.DueAt.Local()
		if due.Year() != year || due.Month() != month {
			continue
		}
		key := due.Format("2006-01-02")
		out[key] = append(out[key], t)
	}
	return out
}

func (s *taskService) Upcoming(now time.Time) []models.Task {
	return crm.TasksUpcoming(s.repo.List(), now)
}

func (s *taskService) GetByID(id string) (models.Task, error) {
	return s.repo.GetByID(id)
}

func (s *taskService) Create(task models.Task) (models.Task, error) {
	if task.Title == "" {
		return models.Task{}, errors.New("task title is required")
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.TaskOpen
	}
	if task.Category == "" {
		task.Category = models.CategoryOther
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	s.repo.Create(task)
	return task, nil
}

func (s *taskService) UpdateStatus(id string, to models.TaskStatus) error {
	if to != models.TaskOpen && to != models.TaskDone {
		return errors.New("invalid task status")
	}
	return s.repo.UpdateStatus(id, to)
}
