package loan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

type Repository interface {
	CreateLoan(ctx context.Context, l *Loan) error
	ListLoans(ctx context.Context, userID string) ([]*Loan, error)
	GetLoan(ctx context.Context, userID, id string) (*Loan, error)
	UpdateLoan(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteLoan(ctx context.Context, userID, id string) error
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
	LoanDate          time.Time
	ReturnDate        *time.Time
	IsReturned        bool
	Description       *string
	IsHistoricalEntry bool
	AccountID         *string
	TransactionID     *string
}

type UpdateParams struct {
	PersonName        *string
	Amount            *float64
	Currency          *string
	LoanDate          *time.Time
	ReturnDate        opt.Field[time.Time]
	IsReturned        *bool
	Description       opt.Field[string]
	IsHistoricalEntry *bool
	AccountID         opt.Field[string]
	TransactionID     opt.Field[string]
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Loan, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC().Truncate(time.Second)
	l := &Loan{
		ID:                id,
		UserID:            userID,
		PersonName:        params.PersonName,
		Amount:            params.Amount,
		Currency:          currency,
		LoanDate:          params.LoanDate.UTC(),
		ReturnDate:        params.ReturnDate,
		IsReturned:        params.IsReturned,
		Description:       params.Description,
		IsHistoricalEntry: params.IsHistoricalEntry,
		AccountID:         params.AccountID,
		TransactionID:     params.TransactionID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.CreateLoan(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Loan, error) {
	return s.repo.ListLoans(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Loan, error) {
	return s.repo.GetLoan(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	return s.repo.UpdateLoan(ctx, userID, id, params)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteLoan(ctx, userID, id)
}
