package loan

import (
	"time"

	"github.com/ashiqdev/taka/internal/loan"
)

type loanResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	PersonName        string     `json:"person_name"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	LoanDate          time.Time  `json:"loan_date"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
	IsReturned        bool       `json:"is_returned"`
	Description       *string    `json:"description,omitempty"`
	IsHistoricalEntry bool       `json:"is_historical_entry"`
	AccountID         *string    `json:"account_id,omitempty"`
	TransactionID     *string    `json:"transaction_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toResponse(l *loan.Loan) loanResponse {
	return loanResponse{
		ID:                l.ID,
		UserID:            l.UserID,
		PersonName:        l.PersonName,
		Amount:            l.Amount,
		Currency:          l.Currency,
		LoanDate:          l.LoanDate,
		ReturnDate:        l.ReturnDate,
		IsReturned:        l.IsReturned,
		Description:       l.Description,
		IsHistoricalEntry: l.IsHistoricalEntry,
		AccountID:         l.AccountID,
		TransactionID:     l.TransactionID,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toResponseList(loans []*loan.Loan) []loanResponse {
	resp := make([]loanResponse, len(loans))
	for i, l := range loans {
		resp[i] = toResponse(l)
	}

	return resp
}
