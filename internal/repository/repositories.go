package repository

import (
	"github.com/deppfellow/grubdash/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Dishes DishRepository
	Orders OrderRepository
}

// NewRepositories picks the store for the configured driver.
//
// The postgres store needs s.DB, which the server only opens for that
// driver; every other case gets a fresh in-memory store.
func NewRepositories(s *server.Server) *Repositories {
	if s.DB != nil {
		store := NewPostgresStore(s.DB.Pool)
		return &Repositories{Dishes: store, Orders: store}
	}
	return NewMemoryRepositories()
}

// NewMemoryRepositories returns repositories backed by one memory store.
func NewMemoryRepositories() *Repositories {
	store := NewMemoryStore()
	return &Repositories{Dishes: store, Orders: store}
}
