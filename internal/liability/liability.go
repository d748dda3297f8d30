package liability

import "time"

// Liability is money owed to another person. The optional account and
// transaction links record how a historical entry was settled.
type Liability struct {
	ID                string
	UserID            string
	PersonName        string
	Amount            float64
	Currency          string
	DueDate           time.Time
	IsPaid            bool
	Description       *string
	IsHistoricalEntry bool
	AccountID         *string
	TransactionID     *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsOverdue reports whether the liability is unpaid past its due date.
func (l *Liability) IsOverdue() bool {
	return !l.IsPaid && l.DueDate.Before(time.Now())
}
