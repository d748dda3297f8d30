package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]*Transaction, error)
	GetTransaction(ctx context.Context, userID, id string) (*Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteTransaction(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams has no ID field: transaction ids are always server
// generated. A zero Date means "now".
type CreateParams struct {
	AccountID   string
	Type        Type
	Amount      float64
	Currency    string
	Category    *string
	Description *string
	Date        time.Time
}

type UpdateParams struct {
	AccountID   *string
	Type        *Type
	Amount      *float64
	Currency    *string
	Category    opt.Field[string]
	Description opt.Field[string]
	Date        *time.Time
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Transaction, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)

	date := params.Date
	if date.IsZero() {
		date = now
	}

	tx := &Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AccountID:   params.AccountID,
		Type:        params.Type,
		Amount:      params.Amount,
		Currency:    currency,
		Category:    params.Category,
		Description: params.Description,
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateTransaction(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}
