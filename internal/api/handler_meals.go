package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

type mealRequest struct {
	Type *string `json:"type"`
	Size *string `json:"size"`
	Date *string `json:"date"`
}

type mealResponse struct {
	ID      string  `json:"id"`
	ChildID string  `json:"childId"`
	Type    string  `json:"type"`
	Size    *string `json:"size,omitempty"`
	Date    string  `json:"date"`
}

func mealToAPI(m *domain.Meal) mealResponse {
	return mealResponse{
		ID:      m.ID,
		ChildID: m.ChildID,
		Type:    m.Type,
		Size:    m.Size,
		Date:    m.Date.Format(time.RFC3339),
	}
}

// parseMealDate parses an RFC 3339 timestamp from the request body.
func parseMealDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, domain.ErrValidation(domain.CodeValidationFailed, "date must be a valid RFC 3339 timestamp")
	}
	return &t, nil
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.meals.ListForChild(r.Context(), chi.URLParam(r, "childID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]mealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, mealToAPI(&meals[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) addMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	date, err := parseMealDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	mealType := ""
	if req.Type != nil {
		mealType = *req.Type
	}

	meal, err := h.meals.Add(r.Context(), domain.CreateMealRequest{
		ChildID: chi.URLParam(r, "childID"),
		Type:    mealType,
		Size:    req.Size,
		Date:    date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": meal.ID})
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	meal, err := h.meals.GetByID(r.Context(), chi.URLParam(r, "mealID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mealToAPI(meal))
}

func (h *Handler) editMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	date, err := parseMealDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.meals.Edit(r.Context(), domain.EditMealRequest{
		ID:   chi.URLParam(r, "mealID"),
		Type: req.Type,
		Size: req.Size,
		Date: date,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	if err := h.meals.Delete(r.Context(), chi.URLParam(r, "mealID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
