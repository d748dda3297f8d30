package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashiqdev/taka/internal/database"
)

func TestUpdateBuilder_Query(t *testing.T) {
	b := database.NewUpdateBuilder()
	b.Set("name", "Groceries")
	b.Set("amount", 500.0)

	query, args := b.Query("budgets", "id = $%d AND user_id = $%d", "b1", "u1")

	assert.Equal(t, "UPDATE budgets SET name = $1, amount = $2 WHERE id = $3 AND user_id = $4", query)
	assert.Equal(t, []any{"Groceries", 500.0, "b1", "u1"}, args)
}

func TestUpdateBuilder_SetIf(t *testing.T) {
	b := database.NewUpdateBuilder()
	b.SetIf(false, "skipped", 1)
	b.SetIf(true, "kept", 2)

	query, args := b.Query("accounts", "id = $%d", "a1")

	assert.Equal(t, "UPDATE accounts SET kept = $1 WHERE id = $2", query)
	assert.Equal(t, []any{2, "a1"}, args)
}

func TestUpdateBuilder_NilWritesNull(t *testing.T) {
	b := database.NewUpdateBuilder()
	b.Set("description", nil)

	query, args := b.Query("transactions", "id = $%d", "t1")

	assert.Equal(t, "UPDATE transactions SET description = $1 WHERE id = $2", query)
	assert.Nil(t, args[0])
}

func TestUpdateBuilder_Empty(t *testing.T) {
	b := database.NewUpdateBuilder()
	assert.True(t, b.Empty())

	b.Set("name", "x")
	assert.False(t, b.Empty())
}
