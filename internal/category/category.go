package category

import "time"

// Type says whether a category classifies income or expenses.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known category type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a shared taxonomy entry. Categories are global: they carry
// no owning user and every authenticated user reads the same set. Rows
// with IsDefault set are seeded at startup and cannot be changed or
// removed through the API.
type Category struct {
	ID        string
	Name      string
	Type      Type
	Icon      string
	Color     string
	IsDefault bool
	CreatedAt time.Time
}

type seedEntry struct {
	name  string
	typ   Type
	icon  string
	color string
}

// defaultSeed is the taxonomy every fresh install starts with.
var defaultSeed = []seedEntry{
	{"Salary", TypeIncome, "💰", "#4CAF50"},
	{"Business", TypeIncome, "💼", "#2196F3"},
	{"Investment", TypeIncome, "📈", "#FF9800"},
	{"Gift", TypeIncome, "🎁", "#E91E63"},
	{"Food", TypeExpense, "🍔", "#FF5722"},
	{"Transportation", TypeExpense, "🚗", "#607D8B"},
	{"Shopping", TypeExpense, "🛍️", "#9C27B0"},
	{"Entertainment", TypeExpense, "🎬", "#673AB7"},
	{"Bills", TypeExpense, "💡", "#795548"},
	{"Medical", TypeExpense, "⚕️", "#F44336"},
}
