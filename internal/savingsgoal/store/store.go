package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ashiqdev/taka/internal/database"
	"github.com/ashiqdev/taka/internal/repo"
	"github.com/ashiqdev/taka/internal/savingsgoal"
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

const selectGoalColumns = `
	id, user_id, name, target_amount, current_amount, currency, target_date,
	description, account_id, priority, is_completed, created_at, updated_at
`

func scanGoal(s scanner) (*savingsgoal.Goal, error) {
	var g savingsgoal.Goal

	if err := s.Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.Currency, &g.TargetDate, &g.Description, &g.AccountID,
		&g.Priority, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *savingsgoal.Goal) error {
	query := `
		INSERT INTO savings_goals (id, user_id, name, target_amount, current_amount, currency,
			target_date, description, account_id, priority, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := s.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.Currency,
		g.TargetDate, g.Description, g.AccountID, g.Priority, g.IsCompleted,
		g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating savings goal: %w", err)
	}

	return nil
}

func (s *Store) ListGoals(ctx context.Context, userID string) ([]*savingsgoal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY target_date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing savings goals: %w", err)
	}
	defer rows.Close()

	var goals []*savingsgoal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning savings goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating savings goal rows: %w", err)
	}

	return goals, nil
}

func (s *Store) GetGoal(ctx context.Context, userID, id string) (*savingsgoal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM savings_goals
		WHERE id = $1 AND user_id = $2`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting savings goal: %w", err)
	}

	return g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, userID, id string, params savingsgoal.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.Name != nil {
		b.Set("name", *params.Name)
	}

	if params.TargetAmount != nil {
		b.Set("target_amount", *params.TargetAmount)
	}

	if params.CurrentAmount != nil {
		b.Set("current_amount", *params.CurrentAmount)
	}

	if params.Currency != nil {
		b.Set("currency", *params.Currency)
	}

	if params.TargetDate != nil {
		b.Set("target_date", params.TargetDate.UTC())
	}

	if params.Priority != nil {
		b.Set("priority", *params.Priority)
	}

	if params.IsCompleted != nil {
		b.Set("is_completed", *params.IsCompleted)
	}

	b.SetIf(params.Description.Set(), "description", params.Description.Ptr())
	b.SetIf(params.AccountID.Set(), "account_id", params.AccountID.Ptr())

	b.Set("updated_at", time.Now().UTC().Truncate(time.Second))

	query, args := b.Query("savings_goals", "id = $%d AND user_id = $%d", id, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating savings goal: %w", err)
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

func (s *Store) DeleteGoal(ctx context.Context, userID, id string) error {
	query := `DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting savings goal: %w", err)
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
