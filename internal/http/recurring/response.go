package recurring

import (
	"time"

	"github.com/ashiqdev/taka/internal/recurring"
)

type recurringResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	AccountID     string     `json:"account_id"`
	Type          string     `json:"type"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Category      *string    `json:"category,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Frequency     string     `json:"frequency"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	NextDueDate   time.Time  `json:"next_due_date"`
	IsActive      bool       `json:"is_active"`
	SavingsGoalID *string    `json:"savings_goal_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toResponse(rt *recurring.Transaction) recurringResponse {
	return recurringResponse{
		ID:            rt.ID,
		UserID:        rt.UserID,
		AccountID:     rt.AccountID,
		Type:          rt.Type,
		Amount:        rt.Amount,
		Currency:      rt.Currency,
		Category:      rt.Category,
		Description:   rt.Description,
		Frequency:     rt.Frequency,
		StartDate:     rt.StartDate,
		EndDate:       rt.EndDate,
		NextDueDate:   rt.NextDueDate,
		IsActive:      rt.IsActive,
		SavingsGoalID: rt.SavingsGoalID,
		CreatedAt:     rt.CreatedAt,
		UpdatedAt:     rt.UpdatedAt,
	}
}

func toResponseList(rts []*recurring.Transaction) []recurringResponse {
	resp := make([]recurringResponse, len(rts))
	for i, rt := range rts {
		resp[i] = toResponse(rt)
	}

	return resp
}
