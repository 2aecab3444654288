package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// Guard precedence per request: identity present, then the parent-path
// assertion, then resource existence/ownership. A path that explicitly names
// a foreign parent is an unambiguous cross-tenant attempt and reports
// Forbidden; a child or meal id that merely fails the ownership check
// reports NotFound so probing reveals nothing about which ids exist.

// requireParentMatch rejects requests whose parentID path segment names
// anyone but the caller, regardless of whether that other parent exists.
func (h *Handler) requireParentMatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := domain.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, domain.ErrUnauthenticated(domain.CodeUnauthenticated, "authentication required"))
			return
		}
		parentID := chi.URLParam(r, "parentID")
		if !domain.ValidID(parentID) {
			writeError(w, domain.ErrValidation(domain.CodeValidationFailed, "parent id must be a valid UUID"))
			return
		}
		if parentID != identity.ID {
			writeError(w, domain.ErrAccessDenied("cannot act on behalf of another parent"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireChildOwnership resolves the childID path segment against the
// caller. Absent children and children of other parents fail identically.
func (h *Handler) requireChildOwnership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := domain.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, domain.ErrUnauthenticated(domain.CodeUnauthenticated, "authentication required"))
			return
		}
		childID := chi.URLParam(r, "childID")
		if !domain.ValidID(childID) {
			writeError(w, domain.ErrValidation(domain.CodeValidationFailed, "child id must be a valid UUID"))
			return
		}
		if _, err := h.ownership.OwnsChild(r.Context(), identity, childID); err != nil {
			writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireMealUnderChild verifies the mealID path segment names a meal that
// belongs to the already-guarded child. A meal under a different child is
// reported as a missing meal.
func (h *Handler) requireMealUnderChild(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mealID := chi.URLParam(r, "mealID")
		if !domain.ValidID(mealID) {
			writeError(w, domain.ErrValidation(domain.CodeValidationFailed, "meal id must be a valid UUID"))
			return
		}
		meal, err := h.meals.GetByID(r.Context(), mealID)
		if err != nil {
			writeError(w, err)
			return
		}
		if meal.ChildID != chi.URLParam(r, "childID") {
			writeError(w, domain.ErrNotFound(domain.CodeMealNotFound, "meal does not exists"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
