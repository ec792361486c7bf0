package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/JPCabral04/PersonalFinance/internal/domain/account"
	"github.com/JPCabral04/PersonalFinance/internal/domain/ledger"
	"github.com/JPCabral04/PersonalFinance/internal/domain/transaction"
	"github.com/JPCabral04/PersonalFinance/internal/domain/user"
	"github.com/JPCabral04/PersonalFinance/internal/shared/middleware"
)

var validate = validator.New()

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeDomainError maps the closed set of domain errors to status codes.
// This is the only place transport codes are assigned; the domain packages
// return typed errors and nothing else.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, account.ErrUserNotFound),
		errors.Is(err, account.ErrNoAccounts),
		errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, transaction.ErrNoTransactions),
		errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, account.ErrInvalidAccountType),
		errors.Is(err, account.ErrNegativeBalance),
		errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, user.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())

	default:
		// ledger.ErrPartialTransfer lands here intentionally: the caller
		// saw a server-side inconsistency, not a client mistake.
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// userIDFrom extracts the authenticated user's id placed by the auth middleware.
func userIDFrom(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(middleware.UserIDKey).(string)
	return id, ok && id != ""
}
