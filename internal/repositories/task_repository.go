package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &TaskRepository{store: store}
}

func (r *TaskRepository) List() []models.Task {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.tasks)
}

func (r *TaskRepository) GetByID(id string) (models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, t := range r.store.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

func (r *TaskRepository) Create(task models.Task) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tasks = append(r.store.tasks, task)
}

func (r *TaskRepository) UpdateStatus(id string, status models.TaskStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.tasks {
		if r.store.tasks[i].ID == id {
			r.store.tasks[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
