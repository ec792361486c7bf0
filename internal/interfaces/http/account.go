package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JPCabral04/PersonalFinance/internal/domain/account"
)

// AccountHandler exposes ownership-scoped account CRUD.
type AccountHandler struct {
	accounts *account.Service
	logger   *zap.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *account.Service, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

type CreateAccountRequest struct {
	Name        string          `json:"name" validate:"required"`
	AccountType string          `json:"accountType" validate:"required"`
	Balance     decimal.Decimal `json:"balance"`
}

type UpdateAccountRequest struct {
	Name        *string          `json:"name"`
	AccountType *string          `json:"accountType"`
	Balance     *decimal.Decimal `json:"balance"`
}

// HandleAccounts routes the collection endpoints: list and create.
func (h *AccountHandler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, userID)
	case http.MethodPost:
		h.handleCreate(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *AccountHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	accounts, err := h.accounts.ListByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID string) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Balance.IsNegative() {
		writeError(w, http.StatusBadRequest, "initial balance cannot be negative")
		return
	}

	acc, err := h.accounts.Create(r.Context(), account.CreateParams{
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, acc)
}

// HandleAccountByID routes the single-account endpoints: get, update, delete.
func (h *AccountHandler) HandleAccountByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	accountID := r.PathValue("id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "account ID is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, accountID, userID)
	case http.MethodPatch, http.MethodPut:
		h.handleUpdate(w, r, accountID, userID)
	case http.MethodDelete:
		h.handleDelete(w, r, accountID, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *AccountHandler) handleGet(w http.ResponseWriter, r *http.Request, accountID, userID string) {
	acc, err := h.accounts.Get(r.Context(), accountID, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (h *AccountHandler) handleUpdate(w http.ResponseWriter, r *http.Request, accountID, userID string) {
	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acc, err := h.accounts.Update(r.Context(), accountID, userID, account.UpdateParams{
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (h *AccountHandler) handleDelete(w http.ResponseWriter, r *http.Request, accountID, userID string) {
	if err := h.accounts.Delete(r.Context(), accountID, userID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
