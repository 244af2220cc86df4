package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recadario/recadario/internal/metrics"
	"github.com/recadario/recadario/internal/model"
	"github.com/recadario/recadario/internal/store"
)

// ErrRecadoNotFound indicates no recado exists with the given id.
var ErrRecadoNotFound = errors.New("recado not found")

// RecadoService handles recado business logic. It is the single entry
// point for recado access: the endpoints are unauthenticated by
// contract, and any future ownership check belongs here rather than in
// the store or the handlers.
type RecadoService struct {
	store   *store.Store
	metrics metrics.Recorder
}

// NewRecadoService creates a new RecadoService.
func NewRecadoService(st *store.Store, recorder metrics.Recorder) *RecadoService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &RecadoService{
		store:   st,
		metrics: recorder,
	}
}

// CreateRecadoInput defines input for creating a recado.
type CreateRecadoInput struct {
	Titulo    string
	Descricao string
	UsuarioID string
}

// CreateRecado inserts a new recado for the given owner. The owner id
// is not checked against the account directory; that is the documented
// contract.
func (s *RecadoService) CreateRecado(ctx context.Context, input CreateRecadoInput) (*model.Recado, error) {
	recado := model.NewRecado(input.Titulo, input.Descricao, input.UsuarioID)

	if err := s.store.CreateRecado(ctx, recado); err != nil {
		return nil, fmt.Errorf("create recado: %w", err)
	}

	s.metrics.IncRecadoCreated()
	return recado, nil
}

// ListRecados returns all recados owned by usuarioID in creation order.
// An unknown owner yields an empty slice, not an error.
func (s *RecadoService) ListRecados(ctx context.Context, usuarioID string) ([]*model.Recado, error) {
	recados, err := s.store.ListRecadosByUser(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list recados: %w", err)
	}
	return recados, nil
}

// UpdateRecadoInput defines input for updating a recado.
type UpdateRecadoInput struct {
	ID        string
	Titulo    string
	Descricao string
}

// UpdateRecado overwrites titulo and descricao in place. Id and owner
// are immutable.
func (s *RecadoService) UpdateRecado(ctx context.Context, input UpdateRecadoInput) (*model.Recado, error) {
	recado, err := s.store.UpdateRecado(ctx, input.ID, input.Titulo, input.Descricao)
	if err != nil {
		if errors.Is(err, store.ErrRecadoNotFound) {
			return nil, ErrRecadoNotFound
		}
		return nil, fmt.Errorf("update recado: %w", err)
	}

	s.metrics.IncRecadoUpdated()
	return recado, nil
}

// DeleteRecado removes the recado irrevocably.
func (s *RecadoService) DeleteRecado(ctx context.Context, id string) error {
	if err := s.store.DeleteRecado(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecadoNotFound) {
			return ErrRecadoNotFound
		}
		return fmt.Errorf("delete recado: %w", err)
	}

	s.metrics.IncRecadoDeleted()
	return nil
}
