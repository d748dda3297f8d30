package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/budget"
	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/repo"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectBudgetColumns = `
	id, user_id, category, amount, currency, period, created_at, updated_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	if err := s.Scan(
		&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Currency, &b.Period,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category, amount, currency, period, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		b.ID, b.UserID, b.Category, b.Amount, b.Currency, b.Period, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}

func (s *Store) GetBudget(ctx context.Context, userID, id string) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE id = $1 AND user_id = $2`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) UpdateBudget(ctx context.Context, userID, id string, params budget.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.Category != nil {
		b.Set("category", *params.Category)
	}

	if params.Amount != nil {
		b.Set("amount", *params.Amount)
	}

	if params.Currency != nil {
		b.Set("currency", *params.Currency)
	}

	if params.Period != nil {
		b.Set("period", *params.Period)
	}

	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("budgets", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, userID, id string) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}
