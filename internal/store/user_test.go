package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/recadario/recadario/internal/model"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	user := model.NewUser("Ana", "ana@x.com", "hash")
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}

	if got.ID != user.ID {
		t.Errorf("ID = %q, want %q", got.ID, user.ID)
	}
	if got.Nome != "Ana" {
		t.Errorf("Nome = %q, want %q", got.Nome, "Ana")
	}
	if got.PasswordHash != "hash" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "hash")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateUser(ctx, model.NewUser("Ana", "ana@x.com", "h1")); err != nil {
		t.Fatalf("first CreateUser failed: %v", err)
	}

	// Different name and password must not matter, only the email.
	err := s.CreateUser(ctx, model.NewUser("Outra Ana", "ana@x.com", "h2"))
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("second CreateUser error = %v, want ErrEmailExists", err)
	}

	users, _ := s.Counts()
	if users != 1 {
		t.Errorf("user count = %d, want 1", users)
	}
}

func TestCreateUser_EmailCaseSensitive(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateUser(ctx, model.NewUser("a", "ana@x.com", "h")); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Uniqueness is exact-match; a differently cased email is a new user.
	if err := s.CreateUser(ctx, model.NewUser("b", "Ana@x.com", "h")); err != nil {
		t.Fatalf("CreateUser with different casing failed: %v", err)
	}

	users, _ := s.Counts()
	if users != 2 {
		t.Errorf("user count = %d, want 2", users)
	}
}

func TestCreateUser_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateUser(ctx, model.NewUser("Ana", "ana@x.com", "h"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrEmailExists) {
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("%d creations succeeded, want exactly 1", succeeded)
	}

	users, _ := s.Counts()
	if users != 1 {
		t.Errorf("user count = %d, want 1", users)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	s := New()

	_, err := s.GetUserByEmail(context.Background(), "ninguem@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestGetUserByID(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	user := model.NewUser("Ana", "ana@x.com", "h")
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := s.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if got.Email != "ana@x.com" {
		t.Errorf("Email = %q, want %q", got.Email, "ana@x.com")
	}

	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestGetUser_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	user := model.NewUser("Ana", "ana@x.com", "h")
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, _ := s.GetUserByEmail(ctx, "ana@x.com")
	got.Email = "mutada@x.com"

	again, err := s.GetUserByEmail(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("stored user was mutated through a returned copy: %v", err)
	}
	if again.Email != "ana@x.com" {
		t.Errorf("Email = %q, want %q", again.Email, "ana@x.com")
	}
}
