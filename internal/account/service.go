package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	ListAccounts(ctx context.Context, userID string) ([]*Account, error)
	GetAccount(ctx context.Context, userID, id string) (*Account, error)
	UpdateAccount(ctx context.Context, userID, id string, params UpdateParams) error
	DeleteAccount(ctx context.Context, userID, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries the caller-supplied fields. ID may be empty, in
// which case one is generated; a client-generated id makes replays of the
// same create idempotent at the conflict check.
type CreateParams struct {
	ID          string
	Name        string
	Type        Type
	Balance     float64
	Currency    string
	CreditLimit *float64
}

// UpdateParams fields that are absent stay untouched. CreditLimit uses a
// tri-state field because it is the one nullable column a caller may want
// to clear outright.
type UpdateParams struct {
	Name        *string
	Type        *Type
	Balance     *float64
	Currency    *string
	CreditLimit opt.Field[float64]
}

// Empty reports whether the update touches no business field. An empty
// update is still legal and still bumps updated_at.
func (p UpdateParams) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Balance == nil &&
		p.Currency == nil && !p.CreditLimit.Set()
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (*Account, error) {
	currency, err := money.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now().UTC().Truncate(time.Second)
	a := &Account{
		ID:          id,
		UserID:      userID,
		Name:        params.Name,
		Type:        params.Type,
		Balance:     params.Balance,
		Currency:    currency,
		CreditLimit: params.CreditLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Account, error) {
	return s.repo.GetAccount(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) error {
	if params.Currency != nil {
		currency, err := money.NormalizeCurrency(*params.Currency)
		if err != nil {
			return err
		}

		params.Currency = &currency
	}

	if err := s.repo.UpdateAccount(ctx, userID, id, params); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteAccount(ctx, userID, id)
}
