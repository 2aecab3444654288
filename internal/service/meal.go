package service

import (
	"context"
	"time"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// MealService provides CRUD operations on feeding records.
type MealService struct {
	meals    domain.MealRepository
	children domain.ChildRepository
}

// NewMealService creates a new MealService.
func NewMealService(meals domain.MealRepository, children domain.ChildRepository) *MealService {
	return &MealService{meals: meals, children: children}
}

// Add records a meal for a child. The child must exist; a missing date
// defaults to now. Dates are stored in UTC at minute precision.
func (s *MealService) Add(ctx context.Context, req domain.CreateMealRequest) (*domain.Meal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.children.GetByID(ctx, req.ChildID); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	return s.meals.Create(ctx, &domain.Meal{
		ID:      domain.NewID(),
		ChildID: req.ChildID,
		Type:    req.Type,
		Size:    req.Size,
		Date:    domain.NormalizeMealDate(date),
	})
}

// GetByID returns the meal with the given id.
func (s *MealService) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	return s.meals.GetByID(ctx, id)
}

// ListForChild returns the child's meals ordered by date, most recent first.
func (s *MealService) ListForChild(ctx context.Context, childID string) ([]domain.Meal, error) {
	if _, err := s.children.GetByID(ctx, childID); err != nil {
		return nil, err
	}
	return s.meals.ListByChild(ctx, childID)
}

// Edit applies a partial update to a meal.
func (s *MealService) Edit(ctx context.Context, req domain.EditMealRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	meal, err := s.meals.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if req.Type != nil {
		meal.Type = *req.Type
	}
	if req.Size != nil {
		meal.Size = req.Size
	}
	if req.Date != nil {
		meal.Date = domain.NormalizeMealDate(*req.Date)
	}
	return s.meals.Update(ctx, meal)
}

// Delete removes a meal.
func (s *MealService) Delete(ctx context.Context, id string) error {
	if _, err := s.meals.GetByID(ctx, id); err != nil {
		return err
	}
	return s.meals.Delete(ctx, id)
}
