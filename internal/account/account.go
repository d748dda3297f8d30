package account

import (
	"time"
)

// Type classifies an account.
type Type string

const (
	TypeWallet        Type = "wallet"
	TypeBank          Type = "bank"
	TypeMobileBanking Type = "mobile_banking"
	TypeCash          Type = "cash"
	TypeInvestment    Type = "investment"
	TypeSavings       Type = "savings"
	TypeCreditCard    Type = "credit_card"
)

// Valid reports whether t is one of the known account types.
func (t Type) Valid() bool {
	switch t {
	case TypeWallet, TypeBank, TypeMobileBanking, TypeCash,
		TypeInvestment, TypeSavings, TypeCreditCard:
		return true
	}

	return false
}

// Account is a money-holding bucket owned by a single user. Balance keeps
// its raw sign; a credit card carries a negative balance when used.
type Account struct {
	ID          string
	UserID      string
	Name        string
	Type        Type
	Balance     float64
	Currency    string
	CreditLimit *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailableCredit is the remaining headroom on a credit card, zero for
// every other account type.
func (a *Account) AvailableCredit() float64 {
	if a.Type != TypeCreditCard || a.CreditLimit == nil {
		return 0
	}

	return *a.CreditLimit + a.Balance
}

// DisplayBalance is what a client should show: available credit for credit
// cards, the stored balance otherwise.
func (a *Account) DisplayBalance() float64 {
	if a.Type == TypeCreditCard {
		return a.AvailableCredit()
	}

	return a.Balance
}
