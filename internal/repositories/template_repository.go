package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type TemplateRepository struct {
	store *Store
}

func NewTemplateRepository(store *Store) *TemplateRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &TemplateRepository{store: store}
}

func (r *TemplateRepository) List() []models.DocumentTemplate {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.templates)
}

func (r *TemplateRepository) GetByID(id string) (models.DocumentTemplate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, t := range r.store.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return models.DocumentTemplate{}, ErrNotFound
}
