package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/recadario/recadario/internal/handler/dto"
	"github.com/recadario/recadario/internal/service"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /criar-conta.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	input := service.CreateAccountInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	}

	user, err := h.svc.CreateAccount(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			writeError(w, http.StatusBadRequest, "Já existe um usuário com esse email")
			return
		}
		h.logger.Error("create account failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao criar conta")
		return
	}

	h.logger.Info("account_created", "user_id", user.ID)

	writeMessage(w, http.StatusCreated, "Conta criada com sucesso!")
}

// Login handles POST /login. Unknown email and wrong password produce
// the same response; success carries no session or token.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Credenciais inválidas")
			return
		}
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	h.logger.Info("login_succeeded", "user_id", user.ID)

	writeMessage(w, http.StatusOK, "Login realizado com sucesso!")
}
