package api

import (
	"net/http"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// login validates credentials and issues a bearer token. Unknown usernames
// and wrong passwords produce the same response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	identity, err := h.credentials.Validate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if identity == nil {
		writeError(w, domain.ErrUnauthenticated(domain.CodeInvalidCredentials, "invalid username or password"))
		return
	}

	token, err := h.tokens.Issue(*identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loginResponse{AccessToken: token})
}

// profile returns the caller identity carried by the verified token. No
// storage lookup happens here: authentication after login is purely
// cryptographic.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated(domain.CodeUnauthenticated, "authentication required"))
		return
	}
	writeJSON(w, http.StatusOK, identityResponse{
		ID:       identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
	})
}

type identityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
