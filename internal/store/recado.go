package store

import (
	"context"
	"errors"
	"time"

	"github.com/recadario/recadario/internal/model"
)

// ErrRecadoNotFound indicates no recado exists with the given id.
var ErrRecadoNotFound = errors.New("recado not found")

// CreateRecado appends a recado to the store. The owner id is not
// checked against the user collection; that is the documented contract.
func (s *Store) CreateRecado(ctx context.Context, recado *model.Recado) error {
	s.recadosMu.Lock()
	defer s.recadosMu.Unlock()

	stored := *recado
	s.recados = append(s.recados, &stored)
	return nil
}

// ListRecadosByUser returns all recados owned by usuarioID in insertion
// order. An unknown owner yields an empty, non-nil slice.
func (s *Store) ListRecadosByUser(ctx context.Context, usuarioID string) ([]*model.Recado, error) {
	s.recadosMu.RLock()
	defer s.recadosMu.RUnlock()

	result := make([]*model.Recado, 0)
	for _, r := range s.recados {
		if r.UsuarioID == usuarioID {
			found := *r
			result = append(result, &found)
		}
	}

	return result, nil
}

// UpdateRecado overwrites titulo and descricao of the recado with the
// given id. Id and owner are immutable. The find and the mutation run
// under one write-lock acquisition.
func (s *Store) UpdateRecado(ctx context.Context, id, titulo, descricao string) (*model.Recado, error) {
	s.recadosMu.Lock()
	defer s.recadosMu.Unlock()

	for _, r := range s.recados {
		if r.ID == id {
			r.Titulo = titulo
			r.Descricao = descricao
			r.UpdatedAt = time.Now().UTC()
			found := *r
			return &found, nil
		}
	}

	return nil, ErrRecadoNotFound
}

// DeleteRecado removes the recado with the given id. Removal is
// terminal; a second delete of the same id reports ErrRecadoNotFound.
func (s *Store) DeleteRecado(ctx context.Context, id string) error {
	s.recadosMu.Lock()
	defer s.recadosMu.Unlock()

	for i, r := range s.recados {
		if r.ID == id {
			s.recados = append(s.recados[:i], s.recados[i+1:]...)
			return nil
		}
	}

	return ErrRecadoNotFound
}
