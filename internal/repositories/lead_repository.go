package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type LeadRepository struct {
	store *Store
}

func NewLeadRepository(store *Store) *LeadRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &LeadRepository{store: store}
}

func (r *LeadRepository) List() []models.Lead {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.leads)
}

func (r *LeadRepository) GetByID(id string) (models.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, l := range r.store.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lead{}, ErrNotFound
}

func (r *LeadRepository) Create(lead models.Lead) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.leads = append(r.store.leads, lead)
}

func (r *LeadRepository) UpdateStatus(id string, status models.LeadStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.leads {
		if r.store.leads[i].ID == id {
			r.store.leads[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *LeadRepository) UpdateAssignee(id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.leads {
		if r.store.leads[i].ID == id {
			r.store.leads[i].AssignedTo = userID
			return nil
		}
	}
	return ErrNotFound
}
