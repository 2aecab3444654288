package service

import (
	"context"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// OwnershipResolver answers whether an identity owns a child or, one hop
// deeper, a meal. Ownership mismatches are reported as not-found so that a
// probing caller learns nothing about which ids exist. Every call re-resolves
// against storage; there is no cache to go stale after a concurrent delete.
type OwnershipResolver struct {
	children domain.ChildRepository
	meals    domain.MealRepository
}

// NewOwnershipResolver creates an OwnershipResolver.
func NewOwnershipResolver(children domain.ChildRepository, meals domain.MealRepository) *OwnershipResolver {
	return &OwnershipResolver{children: children, meals: meals}
}

// OwnsChild returns the child when it exists and belongs to the identity.
// An absent child and a child owned by someone else yield the same
// not-found error.
func (r *OwnershipResolver) OwnsChild(ctx context.Context, identity domain.Identity, childID string) (*domain.Child, error) {
	child, err := r.children.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child.ParentID != identity.ID {
		return nil, domain.ErrNotFound(domain.CodeChildNotFound, "child does not exists")
	}
	return child, nil
}

// OwnsMeal resolves the owning child first, inheriting OwnsChild's
// collapsing of ownership mismatches into not-found, then verifies the meal
// exists under that child. A meal under a different child reports as a
// missing meal.
func (r *OwnershipResolver) OwnsMeal(ctx context.Context, identity domain.Identity, childID, mealID string) (*domain.Meal, error) {
	if _, err := r.OwnsChild(ctx, identity, childID); err != nil {
		return nil, err
	}
	meal, err := r.meals.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal.ChildID != childID {
		return nil, domain.ErrNotFound(domain.CodeMealNotFound, "meal does not exists")
	}
	return meal, nil
}
