package savingsgoal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	ListGoals(ctx context.Context, userID string) ([]*Goal, error)
	GetGoal(ctx context.Context, userID, id string) (*Goal, error)
	UpdateGoal(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteGoal(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID           string
	Name         string
	TargetAmount float64
	Currency     string
	TargetDate   time.Time
	Description  *string
	AccountID    *string
	Priority     string
}

type UpdateParams struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Currency      *string
	TargetDate    *time.Time
	Description   opt.Field[string]
	AccountID     opt.Field[string]
	Priority      *string
	IsCompleted   *bool
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Goal, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	priority := params.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	now := time.Now().UTC().Truncate(time.Second)
	g := &Goal{
		ID:            id,
		UserID:        userID,
		Name:          params.Name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: 0,
		Currency:      currency,
		TargetDate:    params.TargetDate.UTC(),
		Description:   params.Description,
		AccountID:     params.AccountID,
		Priority:      priority,
		IsCompleted:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Goal, error) {
	return s.repo.GetGoal(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateGoal(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}
