package savingsgoal

import "time"

// DefaultPriority is applied when a create request omits the priority.
const DefaultPriority = "medium"

// Goal tracks progress toward a savings target. CurrentAmount always
// starts at zero; only updates move it.
type Goal struct {
	ID            string
	UserID        string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Currency      string
	TargetDate    time.Time
	Description   *string
	AccountID     *string
	Priority      string
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
