package account

import (
	"time"

	"github.com/ashiqdev/taka/internal/account"
)

type accountResponse struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Type        account.Type `json:"type"`
	Balance     float64      `json:"balance"`
	Currency    string       `json:"currency"`
	CreditLimit *float64     `json:"credit_limit,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Type:        a.Type,
		Balance:     a.Balance,
		Currency:    a.Currency,
		CreditLimit: a.CreditLimit,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}
