package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

type childRequest struct {
	Name string `json:"name"`
}

type childResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

func childToAPI(c *domain.Child) childResponse {
	return childResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}

func (h *Handler) listChildren(w http.ResponseWriter, r *http.Request) {
	identity, _ := domain.IdentityFromContext(r.Context())

	children, err := h.children.ListByParent(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]childResponse, 0, len(children))
	for i := range children {
		out = append(out, childToAPI(&children[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) createChild(w http.ResponseWriter, r *http.Request) {
	identity, _ := domain.IdentityFromContext(r.Context())

	var req childRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	child, err := h.children.Create(r.Context(), domain.CreateChildRequest{
		Name:     req.Name,
		ParentID: identity.ID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": child.ID})
}

func (h *Handler) getChild(w http.ResponseWriter, r *http.Request) {
	child, err := h.children.GetByID(r.Context(), chi.URLParam(r, "childID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, childToAPI(child))
}

func (h *Handler) editChild(w http.ResponseWriter, r *http.Request) {
	var req childRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	child, err := h.children.Edit(r.Context(), domain.EditChildRequest{
		ID:   chi.URLParam(r, "childID"),
		Name: req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, childToAPI(child))
}

func (h *Handler) deleteChild(w http.ResponseWriter, r *http.Request) {
	if err := h.children.Delete(r.Context(), chi.URLParam(r, "childID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
