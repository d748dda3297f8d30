package transaction

import (
	"time"
)

// Type represents the direction of a transaction.
type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}

	return false
}

// Transaction is a single dated movement of money on an account.
type Transaction struct {
	ID          string
	UserID      string
	AccountID   string
	Type        Type
	Amount      float64
	Currency    string
	Category    *string
	Description *string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
