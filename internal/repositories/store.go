package repositories

import (
	"errors"
	"sync"

	"estatecrm/internal/models"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Store holds the seeded entity collections. There is exactly one logical
// writer (the local UI), so mutations are plain last-write-wins updates
// under a single lock. Reads hand out copies so the aggregation layer
// always works on a snapshot.
type Store struct {
	mu        sync.RWMutex
	leads     []models.Lead
	props     []models.Property
	clients   []models.Client
	deals     []models.Deal
	tasks     []models.Task
	users     []models.User
	payments  []models.Payment
	messages  []models.Message
	templates []models.DocumentTemplate
}

// NewStore returns an empty store; tests build their own fixtures.
func NewStore() *Store {
	return &Store{}
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
