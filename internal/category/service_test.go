package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/category"
	"github.com/ashiqdev/taka/internal/repo"
)

// fakeRepo is an in-memory Repository, enough for exercising the service
// without a database.
type fakeRepo struct {
	rows map[string]*category.Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*category.Category)}
}

func (f *fakeRepo) CreateCategory(_ context.Context, c *category.Category) error {
	if _, ok := f.rows[c.ID]; ok {
		return repo.ErrConflict
	}

	f.rows[c.ID] = c

	return nil
}

func (f *fakeRepo) ListCategories(_ context.Context) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}

	return out, nil
}

func (f *fakeRepo) GetCategory(_ context.Context, id string) (*category.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	return c, nil
}

func (f *fakeRepo) UpdateCategory(_ context.Context, id string, params category.UpdateParams) error {
	c, ok := f.rows[id]
	if !ok || c.IsDefault {
		return repo.ErrNotFound
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	return nil
}

func (f *fakeRepo) DeleteCategory(_ context.Context, id string) error {
	c, ok := f.rows[id]
	if !ok || c.IsDefault {
		return repo.ErrNotFound
	}

	delete(f.rows, id)

	return nil
}

func (f *fakeRepo) CountCategories(_ context.Context) (int, error) {
	return len(f.rows), nil
}

func TestService_SeedDefaults(t *testing.T) {
	r := newFakeRepo()
	svc := category.NewService(r)

	require.NoError(t, svc.SeedDefaults(context.Background()))

	seeded, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	var income, expense int
	for _, c := range seeded {
		assert.True(t, c.IsDefault)
		assert.NotEmpty(t, c.Icon)
		assert.NotEmpty(t, c.Color)

		switch c.Type {
		case category.TypeIncome:
			income++
		case category.TypeExpense:
			expense++
		}
	}

	assert.Equal(t, 4, income)
	assert.Equal(t, 6, expense)

	// A second run against a populated table is a no-op.
	require.NoError(t, svc.SeedDefaults(context.Background()))
	again, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, len(seeded))
}

func TestService_DefaultsAreReadOnly(t *testing.T) {
	r := newFakeRepo()
	svc := category.NewService(r)
	require.NoError(t, svc.SeedDefaults(context.Background()))

	seeded, err := svc.List(context.Background())
	require.NoError(t, err)
	id := seeded[0].ID

	name := "Renamed"
	assert.ErrorIs(t, svc.Update(context.Background(), id, category.UpdateParams{Name: &name}), repo.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), repo.ErrNotFound)
}

func TestService_Create(t *testing.T) {
	svc := category.NewService(newFakeRepo())

	c, err := svc.Create(context.Background(), category.CreateParams{
		Name:  "Freelance",
		Type:  category.TypeIncome,
		Icon:  "🧑‍💻",
		Color: "#00BCD4",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.False(t, c.IsDefault)

	// User-created rows stay editable and deletable.
	name := "Consulting"
	assert.NoError(t, svc.Update(context.Background(), c.ID, category.UpdateParams{Name: &name}))
	assert.NoError(t, svc.Delete(context.Background(), c.ID))
}
