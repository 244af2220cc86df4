package model

import "time"

// Recado is a note owned by a single user.
// UsuarioID references a User.ID but is never validated against the
// directory; a recado may outlive (or predate) its owner.
type Recado struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	UsuarioID string    `json:"usuario"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecado constructs a Recado with a fresh id for the given owner.
func NewRecado(titulo, descricao, usuarioID string) *Recado {
	now := time.Now().UTC()
	return &Recado{
		ID:        NewID(),
		Titulo:    titulo,
		Descricao: descricao,
		UsuarioID: usuarioID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
