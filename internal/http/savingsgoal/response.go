package savingsgoal

import (
	"time"

	"github.com/ashiqdev/taka/internal/savingsgoal"
)

type goalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Currency      string    `json:"currency"`
	TargetDate    time.Time `json:"target_date"`
	Description   *string   `json:"description,omitempty"`
	AccountID     *string   `json:"account_id,omitempty"`
	Priority      string    `json:"priority"`
	IsCompleted   bool      `json:"is_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(g *savingsgoal.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Currency:      g.Currency,
		TargetDate:    g.TargetDate,
		Description:   g.Description,
		AccountID:     g.AccountID,
		Priority:      g.Priority,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toResponseList(goals []*savingsgoal.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	return resp
}
