// Package store provides the in-memory data store for users and recados.
// The store is the single owner of both collections; all access goes
// through its methods, each of which holds the collection's lock for the
// whole critical section so check-then-act sequences stay atomic under
// concurrent handlers.
package store

import (
	"sync"

	"github.com/recadario/recadario/internal/model"
)

// Store holds all application state for the lifetime of the process.
// Nothing is persisted; a restart starts empty.
type Store struct {
	usersMu sync.RWMutex
	users   []*model.User

	recadosMu sync.RWMutex
	recados   []*model.Recado
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Counts reports the number of users and recados currently held.
func (s *Store) Counts() (users, recados int) {
	s.usersMu.RLock()
	users = len(s.users)
	s.usersMu.RUnlock()

	s.recadosMu.RLock()
	recados = len(s.recados)
	s.recadosMu.RUnlock()

	return users, recados
}
