package preference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/preference"
	"github.com/ashiqdev/taka/internal/repo"
)

type fakeRepo struct {
	rows map[string]*preference.Preference
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*preference.Preference)}
}

func (f *fakeRepo) GetPreference(_ context.Context, userID string) (*preference.Preference, error) {
	p, ok := f.rows[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}

	return p, nil
}

func (f *fakeRepo) UpsertPreference(_ context.Context, p *preference.Preference) error {
	f.rows[p.UserID] = p

	return nil
}

func TestService_Get_Defaults(t *testing.T) {
	svc := preference.NewService(newFakeRepo())

	p, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, money.DefaultCurrency, p.DisplayCurrency)
	assert.Nil(t, p.UpdatedAt)
}

func TestService_Update(t *testing.T) {
	svc := preference.NewService(newFakeRepo())

	currency := "usd"
	p, err := svc.Update(context.Background(), "u1", preference.UpdateParams{DisplayCurrency: &currency})
	require.NoError(t, err)

	assert.Equal(t, "USD", p.DisplayCurrency)
	require.NotNil(t, p.UpdatedAt)

	// A later read returns the stored row, not the defaults.
	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.DisplayCurrency)
}

func TestService_Update_UnknownCurrency(t *testing.T) {
	svc := preference.NewService(newFakeRepo())

	currency := "ZZZ"
	_, err := svc.Update(context.Background(), "u1", preference.UpdateParams{DisplayCurrency: &currency})
	assert.ErrorIs(t, err, money.ErrUnknownCurrency)
}

func TestService_Update_EmptyKeepsStored(t *testing.T) {
	svc := preference.NewService(newFakeRepo())

	currency := "EUR"
	_, err := svc.Update(context.Background(), "u1", preference.UpdateParams{DisplayCurrency: &currency})
	require.NoError(t, err)

	p, err := svc.Update(context.Background(), "u1", preference.UpdateParams{})
	require.NoError(t, err)
	assert.Equal(t, "EUR", p.DisplayCurrency)
}
