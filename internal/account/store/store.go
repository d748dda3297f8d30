package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/account"
	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/repo"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	id, user_id, name, account_type, balance, currency, credit_limit, created_at, updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var (
		a       account.Account
		typeStr string
	)

	if err := s.Scan(
		&a.ID, &a.UserID, &a.Name, &typeStr, &a.Balance, &a.Currency,
		&a.CreditLimit, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, name, account_type, balance, currency, credit_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		string(a.Type),
		a.Balance,
		a.Currency,
		a.CreditLimit,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) ListAccounts(ctx context.Context, userID string) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) GetAccount(ctx context.Context, userID, id string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE id = $1 AND user_id = $2`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) UpdateAccount(ctx context.Context, userID, id string, params account.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.Name != nil {
		b.Set("name", *params.Name)
	}

	if params.Type != nil {
		b.Set("account_type", string(*params.Type))
	}

	if params.Balance != nil {
		b.Set("balance", *params.Balance)
	}

	if params.Currency != nil {
		b.Set("currency", *params.Currency)
	}

	b.SetIf(params.CreditLimit.Set(), "credit_limit", params.CreditLimit.Ptr())

	// updated_at moves on every update, even one that changes nothing else.
	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("accounts", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
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

func (s *Store) DeleteAccount(ctx context.Context, userID, id string) error {
	query := `DELETE FROM accounts WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
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
