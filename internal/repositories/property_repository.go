package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type PropertyRepository struct {
	store *Store
}

func NewPropertyRepository(store *Store) *PropertyRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &PropertyRepository{store: store}
}

func (r *PropertyRepository) List() []models.Property {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.props)
}

func (r *PropertyRepository) GetByID(id string) (models.Property, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.props {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Property{}, ErrNotFound
}
