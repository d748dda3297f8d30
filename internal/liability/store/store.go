package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/liability"
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

const selectLiabilityColumns = `
	id, user_id, person_name, amount, currency, due_date, is_paid, description,
	is_historical_entry, account_id, transaction_id, created_at, updated_at
`

func scanLiability(s scanner) (*liability.Liability, error) {
	var l liability.Liability

	if err := s.Scan(
		&l.ID, &l.UserID, &l.PersonName, &l.Amount, &l.Currency, &l.DueDate,
		&l.IsPaid, &l.Description, &l.IsHistoricalEntry, &l.AccountID,
		&l.TransactionID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Store) CreateLiability(ctx context.Context, l *liability.Liability) error {
	query := `
		INSERT INTO liabilities (id, user_id, person_name, amount, currency, due_date, is_paid, description,
			is_historical_entry, account_id, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := s.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.PersonName, l.Amount, l.Currency, l.DueDate, l.IsPaid,
		l.Description, l.IsHistoricalEntry, l.AccountID, l.TransactionID,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating liability: %w", err)
	}

	return nil
}

func (s *Store) ListLiabilities(ctx context.Context, userID string) ([]*liability.Liability, error) {
	query := `SELECT ` + selectLiabilityColumns + `
		FROM liabilities
		WHERE user_id = $1
		ORDER BY due_date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []*liability.Liability

	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning liability: %w", err)
		}

		liabilities = append(liabilities, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liability rows: %w", err)
	}

	return liabilities, nil
}

func (s *Store) GetLiability(ctx context.Context, userID, id string) (*liability.Liability, error) {
	query := `SELECT ` + selectLiabilityColumns + `
		FROM liabilities
		WHERE id = $1 AND user_id = $2`

	l, err := scanLiability(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting liability: %w", err)
	}

	return l, nil
}

func (s *Store) UpdateLiability(ctx context.Context, userID, id string, params liability.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.PersonName != nil {
		b.Set("person_name", *params.PersonName)
	}

	if params.Amount != nil {
		b.Set("amount", *params.Amount)
	}

	if params.Currency != nil {
		b.Set("currency", *params.Currency)
	}

	if params.DueDate != nil {
		b.Set("due_date", params.DueDate.UTC())
	}

	if params.IsPaid != nil {
		b.Set("is_paid", *params.IsPaid)
	}

	if params.IsHistoricalEntry != nil {
		b.Set("is_historical_entry", *params.IsHistoricalEntry)
	}

	b.SetIf(params.Description.Set(), "description", params.Description.Ptr())
	b.SetIf(params.AccountID.Set(), "account_id", params.AccountID.Ptr())
	b.SetIf(params.TransactionID.Set(), "transaction_id", params.TransactionID.Ptr())

	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("liabilities", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating liability: %w", err)
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

func (s *Store) DeleteLiability(ctx context.Context, userID, id string) error {
	query := `DELETE FROM liabilities WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting liability: %w", err)
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
