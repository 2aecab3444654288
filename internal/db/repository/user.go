package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// UserRepo persists user accounts. Mutations go through the write pool,
// lookups through the read pool.
type UserRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewUserRepo creates a UserRepo on the given pools.
func NewUserRepo(writeDB, readDB *sql.DB) *UserRepo {
	return &UserRepo{writeDB: writeDB, readDB: readDB}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, now, now)
	if err != nil {
		return nil, mapDBError(domain.CodeUserNotFound, err)
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = ?`, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE username = ?`, username)
}

func (r *UserRepo) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.readDB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapDBError(domain.CodeUserNotFound, err)
	}
	return &u, nil
}

func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email)
}

func (r *UserRepo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.readDB.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
