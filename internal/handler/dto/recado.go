package dto

import (
	"time"

	"github.com/recadario/recadario/internal/model"
)

// CreateRecadoRequest represents the request body for creating a recado.
type CreateRecadoRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	UsuarioID string `json:"usuarioId"`
}

// UpdateRecadoRequest represents the request body for updating a recado.
type UpdateRecadoRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

// RecadoResponse represents a recado in API responses. The "usuario"
// field name is fixed by the wire contract.
type RecadoResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	UsuarioID string    `json:"usuario"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRecadoResponse converts a Recado model to RecadoResponse DTO.
func ToRecadoResponse(recado *model.Recado) *RecadoResponse {
	return &RecadoResponse{
		ID:        recado.ID,
		Titulo:    recado.Titulo,
		Descricao: recado.Descricao,
		UsuarioID: recado.UsuarioID,
		CreatedAt: recado.CreatedAt,
		UpdatedAt: recado.UpdatedAt,
	}
}

// ToRecadoListResponse converts a slice of Recado models to response DTOs.
// The result is never nil so an empty list serializes as [].
func ToRecadoListResponse(recados []*model.Recado) []RecadoResponse {
	responses := make([]RecadoResponse, len(recados))
	for i, recado := range recados {
		responses[i] = *ToRecadoResponse(recado)
	}
	return responses
}
