package service

import (
	"context"
	"errors"
	"testing"

	"github.com/recadario/recadario/internal/metrics"
	"github.com/recadario/recadario/internal/store"
)

func TestCreateRecado_AlwaysSucceeds(t *testing.T) {
	t.Parallel()

	svc := NewRecadoService(store.New(), nil)
	ctx := context.Background()

	// Empty fields and a non-existent owner are all accepted.
	recado, err := svc.CreateRecado(ctx, CreateRecadoInput{})
	if err != nil {
		t.Fatalf("CreateRecado failed: %v", err)
	}
	if recado.ID == "" {
		t.Error("recado should have an assigned id")
	}
}

func TestListRecados_ScopedByOwner(t *testing.T) {
	t.Parallel()

	svc := NewRecadoService(store.New(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateRecado(ctx, CreateRecadoInput{Titulo: "a", UsuarioID: "ana"}); err != nil {
			t.Fatalf("CreateRecado failed: %v", err)
		}
	}
	if _, err := svc.CreateRecado(ctx, CreateRecadoInput{Titulo: "b", UsuarioID: "bia"}); err != nil {
		t.Fatalf("CreateRecado failed: %v", err)
	}

	ana, err := svc.ListRecados(ctx, "ana")
	if err != nil {
		t.Fatalf("ListRecados failed: %v", err)
	}
	if len(ana) != 3 {
		t.Errorf("ana has %d recados, want 3", len(ana))
	}
	for _, r := range ana {
		if r.UsuarioID != "ana" {
			t.Errorf("recado %q belongs to %q, want ana", r.ID, r.UsuarioID)
		}
	}

	empty, err := svc.ListRecados(ctx, "ninguem")
	if err != nil {
		t.Fatalf("ListRecados failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown owner has %d recados, want 0", len(empty))
	}
}

func TestUpdateRecado_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewRecadoService(store.New(), nil)

	_, err := svc.UpdateRecado(context.Background(), UpdateRecadoInput{ID: "missing", Titulo: "x"})
	if !errors.Is(err, ErrRecadoNotFound) {
		t.Errorf("error = %v, want ErrRecadoNotFound", err)
	}
}

func TestDeleteRecado_Twice(t *testing.T) {
	t.Parallel()

	svc := NewRecadoService(store.New(), nil)
	ctx := context.Background()

	recado, err := svc.CreateRecado(ctx, CreateRecadoInput{Titulo: "T", UsuarioID: "ana"})
	if err != nil {
		t.Fatalf("CreateRecado failed: %v", err)
	}

	if err := svc.DeleteRecado(ctx, recado.ID); err != nil {
		t.Fatalf("first DeleteRecado failed: %v", err)
	}
	if err := svc.DeleteRecado(ctx, recado.ID); !errors.Is(err, ErrRecadoNotFound) {
		t.Errorf("second delete error = %v, want ErrRecadoNotFound", err)
	}
}

func TestRecadoMetrics(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewInMemory()
	svc := NewRecadoService(store.New(), recorder)
	ctx := context.Background()

	recado, err := svc.CreateRecado(ctx, CreateRecadoInput{Titulo: "T", UsuarioID: "ana"})
	if err != nil {
		t.Fatalf("CreateRecado failed: %v", err)
	}
	if _, err := svc.UpdateRecado(ctx, UpdateRecadoInput{ID: recado.ID, Titulo: "T2"}); err != nil {
		t.Fatalf("UpdateRecado failed: %v", err)
	}
	if err := svc.DeleteRecado(ctx, recado.ID); err != nil {
		t.Fatalf("DeleteRecado failed: %v", err)
	}

	snap := recorder.Snapshot()
	if snap.RecadosCreated != 1 || snap.RecadosUpdated != 1 || snap.RecadosDeleted != 1 {
		t.Errorf("snapshot = %+v, want one of each recado counter", snap)
	}
}
