package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	UpdateCategory(ctx context.Context, id string, params UpdateParams) error
	DeleteCategory(ctx context.Context, id string) error
	CountCategories(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID    string
	Name  string
	Type  Type
	Icon  string
	Color string
}

// UpdateParams never includes is_default: user-created categories stay
// non-default and the seeded defaults are immutable.
type UpdateParams struct {
	Name  *string
	Type  *Type
	Icon  *string
	Color *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	c := &Category{
		ID:        id,
		Name:      params.Name,
		Type:      params.Type,
		Icon:      params.Icon,
		Color:     params.Color,
		IsDefault: false,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) error {
	return s.repo.UpdateCategory(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

// SeedDefaults inserts the default taxonomy into an empty categories
// table. A table with any rows at all is left alone, so reinstalls do not
// duplicate or resurrect defaults the operator removed by hand.
func (s *Service) SeedDefaults(ctx context.Context) error {
	count, err := s.repo.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}

	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Truncate(time.Second)

	for _, e := range defaultSeed {
		c := &Category{
			ID:        uuid.NewString(),
			Name:      e.name,
			Type:      e.typ,
			Icon:      e.icon,
			Color:     e.color,
			IsDefault: true,
			CreatedAt: now,
		}

		if err := s.repo.CreateCategory(ctx, c); err != nil {
			return fmt.Errorf("seeding category %q: %w", e.name, err)
		}
	}

	return nil
}
