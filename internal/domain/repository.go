package domain

import "context"

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ChildRepository provides persistence for children.
type ChildRepository interface {
	Create(ctx context.Context, c *Child) (*Child, error)
	GetByID(ctx context.Context, id string) (*Child, error)
	ListByParent(ctx context.Context, parentID string) ([]Child, error)
	Update(ctx context.Context, c *Child) error
	Delete(ctx context.Context, id string) error
}

// MealRepository provides persistence for meals.
type MealRepository interface {
	Create(ctx context.Context, m *Meal) (*Meal, error)
	GetByID(ctx context.Context, id string) (*Meal, error)
	ListByChild(ctx context.Context, childID string) ([]Meal, error)
	Update(ctx context.Context, m *Meal) error
	Delete(ctx context.Context, id string) error
}
