package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// MealRepo persists feeding records and their immutable child edge.
type MealRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewMealRepo creates a MealRepo on the given pools.
func NewMealRepo(writeDB, readDB *sql.DB) *MealRepo {
	return &MealRepo{writeDB: writeDB, readDB: readDB}
}

func (r *MealRepo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	now := time.Now().UTC()
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO meals (id, child_id, type, size, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ChildID, m.Type, m.Size, m.Date, now, now)
	if err != nil {
		return nil, mapDBError(domain.CodeMealNotFound, err)
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	return m, nil
}

func (r *MealRepo) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	var m domain.Meal
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, child_id, type, size, date, created_at, updated_at FROM meals WHERE id = ?`, id).
		Scan(&m.ID, &m.ChildID, &m.Type, &m.Size, &m.Date, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, mapDBError(domain.CodeMealNotFound, err)
	}
	return &m, nil
}

func (r *MealRepo) ListByChild(ctx context.Context, childID string) ([]domain.Meal, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, child_id, type, size, date, created_at, updated_at
		 FROM meals WHERE child_id = ? ORDER BY date DESC`, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []domain.Meal
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.ChildID, &m.Type, &m.Size, &m.Date, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *MealRepo) Update(ctx context.Context, m *domain.Meal) error {
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE meals SET type = ?, size = ?, date = ?, updated_at = ? WHERE id = ?`,
		m.Type, m.Size, m.Date, time.Now().UTC(), m.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.CodeMealNotFound)
}

func (r *MealRepo) Delete(ctx context.Context, id string) error {
	_, err := r.writeDB.ExecContext(ctx, `DELETE FROM meals WHERE id = ?`, id)
	return err
}
