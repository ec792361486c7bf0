package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/JPCabral04/PersonalFinance/internal/domain/user"
)

// UserHandler exposes the authenticated user's own profile.
type UserHandler struct {
	users  *user.Service
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// HandleMe serves the profile of the token's user: get, update, delete.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		u, err := h.users.Get(r.Context(), userID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)

	case http.MethodPatch, http.MethodPut:
		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		u, err := h.users.Update(r.Context(), userID, user.UpdateParams{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)

	case http.MethodDelete:
		if err := h.users.Delete(r.Context(), userID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleHealth is the liveness endpoint.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
