package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
)

type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	ListBudgets(ctx context.Context, userID string) ([]*Budget, error)
	GetBudget(ctx context.Context, userID, id string) (*Budget, error)
	UpdateBudget(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteBudget(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID       string
	Category string
	Amount   float64
	Currency string
	Period   string
}

type UpdateParams struct {
	Category *string
	Amount   *float64
	Currency *string
	Period   *string
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Budget, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	period := params.Period
	if period == "" {
		period = DefaultPeriod
	}

	now := time.Now().UTC().Truncate(time.Second)
	b := &Budget{
		ID:        id,
		UserID:    userID,
		Category:  params.Category,
		Amount:    params.Amount,
		Currency:  currency,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Budget, error) {
	return s.repo.GetBudget(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateBudget(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteBudget(ctx, userID, id)
}
