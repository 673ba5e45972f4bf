package repositories

import (
	"log"
	"time"

	"estatecrm/internal/models"
)

type DealRepository struct {
	store *Store
}

func NewDealRepository(store *Store) *DealRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &DealRepository{store: store}
}

func (r *DealRepository) List() []models.Deal {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.deals)
}

func (r *DealRepository) Create(deal models.Deal) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deals = append(r.store.deals, deal)
}

func (r *DealRepository) GetByID(id string) (models.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, d := range r.store.deals {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Deal{}, ErrNotFound
}

// UpdateStage moves a deal on the board. Last write wins; UpdatedAt is
// bumped so "closed this month" metrics stay re-derivable.
func (r *DealRepository) UpdateStage(id string, stage models.DealStage) (models.Deal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.deals {
		if r.store.deals[i].ID == id {
			r.store.deals[i].Stage = stage
			r.store.deals[i].UpdatedAt = time.Now()
			return r.store.deals[i], nil
		}
	}
	return models.Deal{}, ErrNotFound
}
