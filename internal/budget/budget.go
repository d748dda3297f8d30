package budget

import "time"

// Budget caps spending for one category over a period ("monthly" unless
// the caller says otherwise).
type Budget struct {
	ID        string
	UserID    string
	Category  string
	Amount    float64
	Currency  string
	Period    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPeriod is applied when a create request omits the period.
const DefaultPeriod = "monthly"
