package service

import (
	"context"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// In-memory repository stubs shared by the service tests. They mirror the
// SQLite repositories' error contract: missing rows come back as
// domain.NotFoundError with the resource's code.

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound(domain.CodeUserNotFound, "user does not exists")
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound(domain.CodeUserNotFound, "user does not exists")
}

func (r *stubUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type stubChildRepo struct {
	children map[string]*domain.Child
	getCalls int
}

func newStubChildRepo() *stubChildRepo {
	return &stubChildRepo{children: map[string]*domain.Child{}}
}

func (r *stubChildRepo) Create(_ context.Context, c *domain.Child) (*domain.Child, error) {
	r.children[c.ID] = c
	return c, nil
}

func (r *stubChildRepo) GetByID(_ context.Context, id string) (*domain.Child, error) {
	r.getCalls++
	if c, ok := r.children[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound(domain.CodeChildNotFound, "child does not exists")
}

func (r *stubChildRepo) ListByParent(_ context.Context, parentID string) ([]domain.Child, error) {
	var out []domain.Child
	for _, c := range r.children {
		if c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChildRepo) Update(_ context.Context, c *domain.Child) error {
	if _, ok := r.children[c.ID]; !ok {
		return domain.ErrNotFound(domain.CodeChildNotFound, "child does not exists")
	}
	r.children[c.ID] = c
	return nil
}

func (r *stubChildRepo) Delete(_ context.Context, id string) error {
	delete(r.children, id)
	return nil
}

type stubMealRepo struct {
	meals    map[string]*domain.Meal
	getCalls int
}

func newStubMealRepo() *stubMealRepo {
	return &stubMealRepo{meals: map[string]*domain.Meal{}}
}

func (r *stubMealRepo) Create(_ context.Context, m *domain.Meal) (*domain.Meal, error) {
	r.meals[m.ID] = m
	return m, nil
}

func (r *stubMealRepo) GetByID(_ context.Context, id string) (*domain.Meal, error) {
	r.getCalls++
	if m, ok := r.meals[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound(domain.CodeMealNotFound, "meal does not exists")
}

func (r *stubMealRepo) ListByChild(_ context.Context, childID string) ([]domain.Meal, error) {
	var out []domain.Meal
	for _, m := range r.meals {
		if m.ChildID == childID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMealRepo) Update(_ context.Context, m *domain.Meal) error {
	if _, ok := r.meals[m.ID]; !ok {
		return domain.ErrNotFound(domain.CodeMealNotFound, "meal does not exists")
	}
	r.meals[m.ID] = m
	return nil
}

func (r *stubMealRepo) Delete(_ context.Context, id string) error {
	delete(r.meals, id)
	return nil
}
