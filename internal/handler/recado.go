package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recadario/recadario/internal/handler/dto"
	"github.com/recadario/recadario/internal/service"
)

// RecadoHandler handles HTTP requests for recado operations.
type RecadoHandler struct {
	svc    *service.RecadoService
	logger *slog.Logger
}

// NewRecadoHandler creates a new RecadoHandler.
func NewRecadoHandler(svc *service.RecadoService, logger *slog.Logger) *RecadoHandler {
	return &RecadoHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /recados.
func (h *RecadoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	input := service.CreateRecadoInput{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		UsuarioID: req.UsuarioID,
	}

	recado, err := h.svc.CreateRecado(r.Context(), input)
	if err != nil {
		h.logger.Error("create recado failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar recado")
		return
	}

	h.logger.Info("recado_created",
		"recado_id", recado.ID,
		"usuario_id", recado.UsuarioID,
	)

	writeMessage(w, http.StatusCreated, "Recado criado com sucesso!")
}

// List handles GET /recados/{usuarioId}. An unknown owner yields an
// empty array, not an error.
func (h *RecadoHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarioID := chi.URLParam(r, "usuarioId")

	recados, err := h.svc.ListRecados(r.Context(), usuarioID)
	if err != nil {
		h.logger.Error("list recados failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao obter recados")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRecadoListResponse(recados))
}

// Update handles PUT /recados/{id}.
func (h *RecadoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateRecadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	input := service.UpdateRecadoInput{
		ID:        id,
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
	}

	recado, err := h.svc.UpdateRecado(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrRecadoNotFound) {
			writeError(w, http.StatusNotFound, "Recado não encontrado")
			return
		}
		h.logger.Error("update recado failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao atualizar recado")
		return
	}

	h.logger.Info("recado_updated", "recado_id", recado.ID)

	writeMessage(w, http.StatusOK, "Recado atualizado com sucesso!")
}

// Delete handles DELETE /recados/{id}. Deletion is terminal; a repeat
// delete of the same id reports 404.
func (h *RecadoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteRecado(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecadoNotFound) {
			writeError(w, http.StatusNotFound, "Recado não encontrado")
			return
		}
		h.logger.Error("delete recado failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao excluir recado")
		return
	}

	h.logger.Info("recado_deleted", "recado_id", id)

	writeMessage(w, http.StatusOK, "Recado excluído com sucesso!")
}
