package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

type Repository interface {
	CreateRecurringTransaction(ctx context.Context, rt *Transaction) error
	ListRecurringTransactions(ctx context.Context, userID string) ([]*Transaction, error)
	GetRecurringTransaction(ctx context.Context, userID, id string) (*Transaction, error)
	UpdateRecurringTransaction(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteRecurringTransaction(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID            string
	AccountID     string
	Type          string
	Amount        float64
	Currency      string
	Category      *string
	Description   *string
	Frequency     string
	StartDate     time.Time
	EndDate       *time.Time
	NextDueDate   time.Time
	IsActive      *bool
	SavingsGoalID *string
}

type UpdateParams struct {
	AccountID     *string
	Type          *string
	Amount        *float64
	Currency      *string
	Category      opt.Field[string]
	Description   opt.Field[string]
	Frequency     *string
	StartDate     *time.Time
	EndDate       opt.Field[time.Time]
	NextDueDate   *time.Time
	IsActive      *bool
	SavingsGoalID opt.Field[string]
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Transaction, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	frequency := params.Frequency
	if frequency == "" {
		frequency = DefaultFrequency
	}

	// Unlike the other boolean flags, is_active defaults to true.
	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	now := time.Now().UTC().Truncate(time.Second)
	rt := &Transaction{
		ID:            id,
		UserID:        userID,
		AccountID:     params.AccountID,
		Type:          params.Type,
		Amount:        params.Amount,
		Currency:      currency,
		Category:      params.Category,
		Description:   params.Description,
		Frequency:     frequency,
		StartDate:     params.StartDate.UTC(),
		EndDate:       params.EndDate,
		NextDueDate:   params.NextDueDate.UTC(),
		IsActive:      isActive,
		SavingsGoalID: params.SavingsGoalID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateRecurringTransaction(ctx, rt); err != nil {
		return nil, err
	}

	return rt, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.ListRecurringTransactions(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Transaction, error) {
	return s.repo.GetRecurringTransaction(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateRecurringTransaction(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteRecurringTransaction(ctx, userID, id)
}
