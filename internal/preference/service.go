package preference

import (
	"context"
	"errors"
	"time"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/repo"
)

type Repository interface {
	GetPreference(ctx context.Context, userID string) (*Preference, error)
	UpsertPreference(ctx context.Context, p *Preference) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type UpdateParams struct {
	DisplayCurrency *string
}

// Get returns the stored preference, or the defaults when the user has
// never saved one.
func (s *Service) Get(ctx context.Context, userID string) (*Preference, error) {
	p, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &Preference{
				UserID:          userID,
				DisplayCurrency: money.DefaultCurrency,
			}, nil
		}

		return nil, err
	}

	return p, nil
}

// Update merges params over the stored preference and upserts the row.
func (s *Service) Update(ctx context.Context, userID string, params UpdateParams) (*Preference, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.DisplayCurrency != nil {
		currency, err := money.NormalizeCurrency(*params.DisplayCurrency)
		if err != nil {
			return nil, err
		}

		p.DisplayCurrency = currency
	}

	now := time.Now().UTC().Truncate(time.Second)
	p.UpdatedAt = &now

	if err := s.repo.UpsertPreference(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
