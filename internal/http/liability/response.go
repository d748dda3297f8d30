package liability

import (
	"time"

	"github.com/ashiqdev/taka/internal/liability"
)

type liabilityResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	PersonName        string    `json:"person_name"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	DueDate           time.Time `json:"due_date"`
	IsPaid            bool      `json:"is_paid"`
	Description       *string   `json:"description,omitempty"`
	IsHistoricalEntry bool      `json:"is_historical_entry"`
	AccountID         *string   `json:"account_id,omitempty"`
	TransactionID     *string   `json:"transaction_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toResponse(l *liability.Liability) liabilityResponse {
	return liabilityResponse{
		ID:                l.ID,
		UserID:            l.UserID,
		PersonName:        l.PersonName,
		Amount:            l.Amount,
		Currency:          l.Currency,
		DueDate:           l.DueDate,
		IsPaid:            l.IsPaid,
		Description:       l.Description,
		IsHistoricalEntry: l.IsHistoricalEntry,
		AccountID:         l.AccountID,
		TransactionID:     l.TransactionID,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toResponseList(liabilities []*liability.Liability) []liabilityResponse {
	resp := make([]liabilityResponse, len(liabilities))
	for i, l := range liabilities {
		resp[i] = toResponse(l)
	}

	return resp
}
