package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) List() []models.Payment {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.payments)
}

func (r *PaymentRepository) Create(p models.Payment) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.payments = append(r.store.payments, p)
}
