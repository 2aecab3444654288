package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.Register(r.Context(), domain.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, identityResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// usernameExists is a public probe used by the registration form.
func (h *Handler) usernameExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.users.UsernameExists(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !exists {
		writeError(w, domain.ErrNotFound(domain.CodeUserNotFound, "user does not exists"))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// emailExists is a public probe used by the registration form.
func (h *Handler) emailExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.users.EmailExists(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}
	if !exists {
		writeError(w, domain.ErrNotFound(domain.CodeUserNotFound, "user does not exists"))
		return
	}
	w.WriteHeader(http.StatusOK)
}
