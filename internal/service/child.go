package service

import (
	"context"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// ChildService provides CRUD operations on children.
type ChildService struct {
	children domain.ChildRepository
	users    domain.UserRepository
}

// NewChildService creates a new ChildService.
func NewChildService(children domain.ChildRepository, users domain.UserRepository) *ChildService {
	return &ChildService{children: children, users: users}
}

// Create registers a child under a parent. The parent must exist; the
// ownership edge is fixed at creation and never reassigned.
func (s *ChildService) Create(ctx context.Context, req domain.CreateChildRequest) (*domain.Child, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, req.ParentID); err != nil {
		return nil, err
	}
	return s.children.Create(ctx, &domain.Child{
		ID:       domain.NewID(),
		Name:     req.Name,
		ParentID: req.ParentID,
	})
}

// GetByID returns the child with the given id.
func (s *ChildService) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	return s.children.GetByID(ctx, id)
}

// ListByParent returns all children of a parent.
func (s *ChildService) ListByParent(ctx context.Context, parentID string) ([]domain.Child, error) {
	return s.children.ListByParent(ctx, parentID)
}

// Edit renames a child.
func (s *ChildService) Edit(ctx context.Context, req domain.EditChildRequest) (*domain.Child, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	child, err := s.children.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	child.Name = req.Name
	if err := s.children.Update(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// Delete removes a child and, through the store's cascading edge, its meals.
func (s *ChildService) Delete(ctx context.Context, id string) error {
	return s.children.Delete(ctx, id)
}
