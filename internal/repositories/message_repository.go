package repositories

import (
	"log"

	"estatecrm/internal/models"
)

type MessageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) *MessageRepository {
	if store == nil {
		log.Fatalf("received nil store")
	}
	return &MessageRepository{store: store}
}

func (r *MessageRepository) List() []models.Message {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return clone(r.store.messages)
}

func (r *MessageRepository) Create(m models.Message) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages = append(r.store.messages, m)
}
