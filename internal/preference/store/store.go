package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ashiqdev/taka/internal/preference"
	"github.com/ashiqdev/taka/internal/repo"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetPreference(ctx context.Context, userID string) (*preference.Preference, error) {
	query := `
		SELECT user_id, display_currency, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`

	var p preference.Preference

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.DisplayCurrency, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting preference: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertPreference(ctx context.Context, p *preference.Preference) error {
	query := `
		INSERT INTO user_preferences (user_id, display_currency, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			display_currency = EXCLUDED.display_currency,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, p.UserID, p.DisplayCurrency, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting preference: %w", err)
	}

	return nil
}
