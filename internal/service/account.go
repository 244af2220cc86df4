// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recadario/recadario/internal/auth"
	"github.com/recadario/recadario/internal/metrics"
	"github.com/recadario/recadario/internal/model"
	"github.com/recadario/recadario/internal/store"
)

// Account service errors.
var (
	// ErrEmailExists indicates an account already uses the email.
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password. Callers must not be able to tell the two apart;
	// distinguishing them would leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService handles account creation and credential verification.
type AccountService struct {
	store   *store.Store
	hasher  *auth.Hasher
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(st *store.Store, hasher *auth.Hasher, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   st,
		hasher:  hasher,
		metrics: recorder,
	}
}

// CreateAccountInput defines input for creating an account.
type CreateAccountInput struct {
	Nome  string
	Email string
	Senha string
}

// CreateAccount hashes the password and inserts a new user. The
// duplicate-email check happens inside the store's atomic
// check-and-insert, so the uniqueness invariant holds even under
// concurrent requests carrying the same email.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*model.User, error) {
	hash, err := s.hasher.Hash(input.Senha)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	user := model.NewUser(input.Nome, input.Email, hash)

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.metrics.IncAccountCreated()
	return user, nil
}

// Login verifies the credentials for the given email. Success is a
// stateless acknowledgment; no session or token is issued.
func (s *AccountService) Login(ctx context.Context, email, senha string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.metrics.IncLogin("failed")
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(senha, user.PasswordHash) {
		s.metrics.IncLogin("failed")
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLogin("success")
	return user, nil
}
