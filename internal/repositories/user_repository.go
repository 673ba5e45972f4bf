package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &UserRepository{store: store}
}

func (r *UserRepository) List() []models.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.users)
}

func (r *UserRepository) GetByID(id string) (models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}
