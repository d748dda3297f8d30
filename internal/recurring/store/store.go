package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/recurring"
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

const selectRecurringColumns = `
	id, user_id, account_id, transaction_type, amount, currency, category, description,
	frequency, start_date, end_date, next_due_date, is_active, savings_goal_id, created_at, updated_at
`

func scanRecurring(s scanner) (*recurring.Transaction, error) {
	var rt recurring.Transaction

	if err := s.Scan(
		&rt.ID, &rt.UserID, &rt.AccountID, &rt.Type, &rt.Amount, &rt.Currency,
		&rt.Category, &rt.Description, &rt.Frequency, &rt.StartDate, &rt.EndDate,
		&rt.NextDueDate, &rt.IsActive, &rt.SavingsGoalID, &rt.CreatedAt, &rt.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &rt, nil
}

func (s *Store) CreateRecurringTransaction(ctx context.Context, rt *recurring.Transaction) error {
	query := `
		INSERT INTO recurring_transactions (id, user_id, account_id, transaction_type, amount, currency,
			category, description, frequency, start_date, end_date, next_due_date, is_active,
			savings_goal_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := s.db.ExecContext(ctx, query,
		rt.ID, rt.UserID, rt.AccountID, rt.Type, rt.Amount, rt.Currency,
		rt.Category, rt.Description, rt.Frequency, rt.StartDate, rt.EndDate,
		rt.NextDueDate, rt.IsActive, rt.SavingsGoalID, rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating recurring transaction: %w", err)
	}

	return nil
}

func (s *Store) ListRecurringTransactions(ctx context.Context, userID string) ([]*recurring.Transaction, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recurring transactions: %w", err)
	}
	defer rows.Close()

	var rts []*recurring.Transaction

	for rows.Next() {
		rt, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring transaction: %w", err)
		}

		rts = append(rts, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring transaction rows: %w", err)
	}

	return rts, nil
}

func (s *Store) GetRecurringTransaction(ctx context.Context, userID, id string) (*recurring.Transaction, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_transactions
		WHERE id = $1 AND user_id = $2`

	rt, err := scanRecurring(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring transaction: %w", err)
	}

	return rt, nil
}

func (s *Store) UpdateRecurringTransaction(ctx context.Context, userID, id string, params recurring.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.AccountID != nil {
		b.Set("account_id", *params.AccountID)
	}

	if params.Type != nil {
		b.Set("transaction_type", *params.Type)
	}

	if params.Amount != nil {
		b.Set("amount", *params.Amount)
	}

	if params.Currency != nil {
		b.Set("currency", *params.Currency)
	}

	if params.Frequency != nil {
		b.Set("frequency", *params.Frequency)
	}

	if params.StartDate != nil {
		b.Set("start_date", params.StartDate.UTC())
	}

	if params.NextDueDate != nil {
		b.Set("next_due_date", params.NextDueDate.UTC())
	}

	if params.IsActive != nil {
		b.Set("is_active", *params.IsActive)
	}

	b.SetIf(params.Category.Set(), "category", params.Category.Ptr())
	b.SetIf(params.Description.Set(), "description", params.Description.Ptr())
	b.SetIf(params.EndDate.Set(), "end_date", params.EndDate.Ptr())
	b.SetIf(params.SavingsGoalID.Set(), "savings_goal_id", params.SavingsGoalID.Ptr())

	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("recurring_transactions", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating recurring transaction: %w", err)
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

func (s *Store) DeleteRecurringTransaction(ctx context.Context, userID, id string) error {
	query := `DELETE FROM recurring_transactions WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting recurring transaction: %w", err)
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
