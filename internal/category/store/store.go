package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ashiqdev/taka/internal/category"
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

const selectCategoryColumns = `
	id, name, category_type, icon, color, is_default, created_at
`

func scanCategory(s scanner) (*category.Category, error) {
	var (
		c       category.Category
		typeStr string
	)

	if err := s.Scan(
		&c.ID, &c.Name, &typeStr, &c.Icon, &c.Color, &c.IsDefault, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (id, name, category_type, icon, color, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.Name, string(c.Type), c.Icon, c.Color, c.IsDefault, c.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return repo.ErrConflict
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		ORDER BY is_default DESC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

// UpdateCategory refuses to touch seeded defaults: the is_default filter
// makes them indistinguishable from missing rows.
func (s *Store) UpdateCategory(ctx context.Context, id string, params category.UpdateParams) error {
	b := database.NewUpdateBuilder()

	if params.Name != nil {
		b.Set("name", *params.Name)
	}

	if params.Type != nil {
		b.Set("category_type", string(*params.Type))
	}

	if params.Icon != nil {
		b.Set("icon", *params.Icon)
	}

	if params.Color != nil {
		b.Set("color", *params.Color)
	}

	if b.Empty() {
		// Categories have no updated_at column, so an empty update has
		// nothing to write. Defaults still report not found.
		c, err := s.GetCategory(ctx, id)
		if err != nil {
			return err
		}

		if c.IsDefault {
			return repo.ErrNotFound
		}

		return nil
	}

	query, args := b.Query("categories", "id = $%d AND is_default = FALSE", id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
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

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1 AND is_default = FALSE`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
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

func (s *Store) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	return count, nil
}
