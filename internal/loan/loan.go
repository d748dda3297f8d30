package loan

import "time"

// Loan is money lent out to another person.
type Loan struct {
	ID                string
	UserID            string
	PersonName        string
	Amount            float64
	Currency          string
	LoanDate          time.Time
	ReturnDate        *time.Time
	IsReturned        bool
	Description       *string
	IsHistoricalEntry bool
	AccountID         *string
	TransactionID     *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
