package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/loan"
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

const selectLoanColumns = `
	id, user_id, person_name, amount, currency, loan_date, return_date, is_returned,
	description, is_historical_entry, account_id, transaction_id, created_at, updated_at
`

func scanLoan(s scanner) (*loan.Loan, error) {
	var l loan.Loan

	if err := s.Scan(
		&l.ID, &l.UserID, &l.PersonName, &l.Amount, &l.Currency, &l.LoanDate,
		&l.ReturnDate, &l.IsReturned, &l.Description, &l.IsHistoricalEntry,
		&l.AccountID, &l.TransactionID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Store) CreateLoan(ctx context.Context, l *loan.Loan) error {
	query := `
		INSERT INTO loans (id, user_id, person_name, amount, currency, loan_date, return_date, is_returned,
			description, is_historical_entry, account_id, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := s.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.PersonName, l.Amount, l.Currency, l.LoanDate,
		l.ReturnDate, l.IsReturned, l.Description, l.IsHistoricalEntry,
		l.AccountID, l.TransactionID, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating loan: %w", err)
	}

	return nil
}

func (s *Store) ListLoans(ctx context.Context, userID string) ([]*loan.Loan, error) {
	query := `SELECT ` + selectLoanColumns + `
		FROM loans
		WHERE user_id = $1
		ORDER BY loan_date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer rows.Close()

	var loans []*loan.Loan

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}

		loans = append(loans, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan rows: %w", err)
	}

	return loans, nil
}

func (s *Store) GetLoan(ctx context.Context, userID, id string) (*loan.Loan, error) {
	query := `SELECT ` + selectLoanColumns + `
		FROM loans
		WHERE id = $1 AND user_id = $2`

	l, err := scanLoan(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting loan: %w", err)
	}

	return l, nil
}

func (s *Store) UpdateLoan(ctx context.Context, userID, id string, params loan.UpdateParams) error {
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

	if params.LoanDate != nil {
		b.Set("loan_date", params.LoanDate.UTC())
	}

	if params.IsReturned != nil {
		b.Set("is_returned", *params.IsReturned)
	}

	if params.IsHistoricalEntry != nil {
		b.Set("is_historical_entry", *params.IsHistoricalEntry)
	}

	b.SetIf(params.ReturnDate.Set(), "return_date", params.ReturnDate.Ptr())
	b.SetIf(params.Description.Set(), "description", params.Description.Ptr())
	b.SetIf(params.AccountID.Set(), "account_id", params.AccountID.Ptr())
	b.SetIf(params.TransactionID.Set(), "transaction_id", params.TransactionID.Ptr())

	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("loans", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating loan: %w", err)
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

func (s *Store) DeleteLoan(ctx context.Context, userID, id string) error {
	query := `DELETE FROM loans WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting loan: %w", err)
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
