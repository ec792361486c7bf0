package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JPCabral04/PersonalFinance/internal/domain/ledger"
	"github.com/JPCabral04/PersonalFinance/internal/domain/transaction"
)

// TransactionHandler exposes the ledger engine: transfers, history queries,
// and the clear-all reset utility.
type TransactionHandler struct {
	ledger *ledger.Service
	logger *zap.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(l *ledger.Service, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: l, logger: logger}
}

type TransferRequest struct {
	OriginAccount      string          `json:"originAccount" validate:"required"`
	DestinationAccount string          `json:"destinationAccount" validate:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
}

// HandleTransactions routes the collection endpoints: transfer, list, clear.
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	if _, ok := userIDFrom(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handleTransfer(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodDelete:
		h.handleClear(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TransactionHandler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.ledger.Transfer(r.Context(), ledger.TransferParams{
		OriginAccountID:      req.OriginAccount,
		DestinationAccountID: req.DestinationAccount,
		Amount:               req.Amount,
		Description:          req.Description,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrPartialTransfer) {
			h.logger.Error("partial transfer failure", zap.Error(err))
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txs, err := h.ledger.ListTransactions(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ClearTransactions(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) (transaction.Filter, error) {
	q := r.URL.Query()
	filter := transaction.Filter{AccountID: q.Get("accountId")}

	if raw := q.Get("dateFrom"); raw != "" {
		t, _, err := parseDateParam(raw)
		if err != nil {
			return transaction.Filter{}, errors.New("invalid dateFrom")
		}
		filter.DateFrom = &t
	}
	if raw := q.Get("dateTo"); raw != "" {
		t, dateOnly, err := parseDateParam(raw)
		if err != nil {
			return transaction.Filter{}, errors.New("invalid dateTo")
		}
		// A bare date as the upper bound covers the whole of that day.
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.DateTo = &t
	}
	return filter, nil
}

func parseDateParam(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse("2006-01-02", raw); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}
