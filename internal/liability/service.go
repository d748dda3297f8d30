package liability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

type Repository interface {
	CreateLiability(ctx context.Context, l *Liability) error
	ListLiabilities(ctx context.Context, userID string) ([]*Liability, error)
	GetLiability(ctx context.Context, userID, id string) (*Liability, error)
	UpdateLiability(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteLiability(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ID                string
	PersonName        string
	Amount            float64
	Currency          string
	DueDate           time.Time
	IsPaid            bool
	Description       *string
	IsHistoricalEntry bool
	AccountID         *string
	TransactionID     *string
}

type UpdateParams struct {
	PersonName        *string
	Amount            *float64
	Currency          *string
	DueDate           *time.Time
	IsPaid            *bool
	Description       opt.Field[string]
	IsHistoricalEntry *bool
	AccountID         opt.Field[string]
	TransactionID     opt.Field[string]
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Liability, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC().Truncate(time.Second)
	l := &Liability{
		ID:                id,
		UserID:            userID,
		PersonName:        params.PersonName,
		Amount:            params.Amount,
		Currency:          currency,
		DueDate:           params.DueDate.UTC(),
		IsPaid:            params.IsPaid,
		Description:       params.Description,
		IsHistoricalEntry: params.IsHistoricalEntry,
		AccountID:         params.AccountID,
		TransactionID:     params.TransactionID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.CreateLiability(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Liability, error) {
	return s.repo.ListLiabilities(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Liability, error) {
	return s.repo.GetLiability(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateLiability(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteLiability(ctx, userID, id)
}
