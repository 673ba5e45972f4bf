package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &ClientRepository{store: store}
}

func (r *ClientRepository) List() []models.Client {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.clients)
}

func (r *ClientRepository) GetByID(id string) (models.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Client{}, ErrNotFound
}

// SetPoints overwrites the loyalty balance; the new balance is computed
// by the caller through the aggregation layer.
func (r *ClientRepository) SetPoints(id string, balance int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.clients {
		if r.store.clients[i].ID == id {
			r.store.clients[i].LoyaltyPoints = balance
			return nil
		}
	}
	return ErrNotFound
}
