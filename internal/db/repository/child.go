package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// ChildRepo persists children and their immutable parent edge.
type ChildRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewChildRepo creates a ChildRepo on the given pools.
func NewChildRepo(writeDB, readDB *sql.DB) *ChildRepo {
	return &ChildRepo{writeDB: writeDB, readDB: readDB}
}

func (r *ChildRepo) Create(ctx context.Context, c *domain.Child) (*domain.Child, error) {
	now := time.Now().UTC()
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO children (id, name, parent_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.ParentID, now, now)
	if err != nil {
		return nil, mapDBError(domain.CodeChildNotFound, err)
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return c, nil
}

func (r *ChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	var c domain.Child
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, name, parent_id, created_at, updated_at FROM children WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ParentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapDBError(domain.CodeChildNotFound, err)
	}
	return &c, nil
}

func (r *ChildRepo) ListByParent(ctx context.Context, parentID string) ([]domain.Child, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, name, parent_id, created_at, updated_at
		 FROM children WHERE parent_id = ? ORDER BY created_at`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []domain.Child
	for rows.Next() {
		var c domain.Child
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

func (r *ChildRepo) Update(ctx context.Context, c *domain.Child) error {
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE children SET name = ?, updated_at = ? WHERE id = ?`,
		c.Name, time.Now().UTC(), c.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.CodeChildNotFound)
}

func (r *ChildRepo) Delete(ctx context.Context, id string) error {
	_, err := r.writeDB.ExecContext(ctx, `DELETE FROM children WHERE id = ?`, id)
	return err
}
