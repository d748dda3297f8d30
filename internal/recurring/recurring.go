package recurring

import "time"

// DefaultFrequency is applied when a create request omits the frequency.
const DefaultFrequency = "monthly"

// Transaction is a template for transactions that repeat on a schedule.
// The backend only stores the schedule; clients materialize the actual
// transactions when next_due_date passes.
type Transaction struct {
	ID            string
	UserID        string
	AccountID     string
	Type          string
	Amount        float64
	Currency      string
	Category      *string
	Description   *string
	Frequency     string
	StartDate     time.Time
	EndDate       *time.Time
	NextDueDate   time.Time
	IsActive      bool
	SavingsGoalID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
