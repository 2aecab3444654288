// Package service implements the business operations of the feeding tracker.
package service

import (
	"context"

	"github.com/CodigoDemente/lactance-tracker-back/internal/auth"
	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// UserService provides account registration and lookup operations.
type UserService struct {
	users  domain.UserRepository
	hasher *auth.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register creates a new account. Username and email are globally unique;
// a duplicate of either is rejected with the same error so the response does
// not reveal which one collided.
func (s *UserService) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = s.users.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, domain.ErrConflict(domain.CodeUserAlreadyExists, "user already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		ID:           domain.NewID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UsernameExists reports whether an account with the given username exists.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.users.UsernameExists(ctx, username)
}

// EmailExists reports whether an account with the given email exists.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.EmailExists(ctx, email)
}
