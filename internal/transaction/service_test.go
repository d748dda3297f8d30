package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/repo"
	"github.com/ashiqdev/taka/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		userID string
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		check     func(t *testing.T, got *transaction.Transaction)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				userID: "u1",
				params: transaction.CreateParams{
					AccountID: "a1",
					Type:      transaction.TypeExpense,
					Amount:    250,
					Currency:  "usd",
					Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *transaction.Transaction) {
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, "u1", got.UserID)
				assert.Equal(t, "USD", got.Currency)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got.Date)
			},
		},
		{
			name: "ZeroDateDefaultsToNow",
			args: args{
				userID: "u1",
				params: transaction.CreateParams{
					AccountID: "a1",
					Type:      transaction.TypeIncome,
					Amount:    5000,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *transaction.Transaction) {
				assert.False(t, got.Date.IsZero())
				assert.Equal(t, got.CreatedAt, got.Date)
			},
		},
		{
			name: "UnknownCurrency",
			args: args{
				userID: "u1",
				params: transaction.CreateParams{AccountID: "a1", Type: transaction.TypeExpense, Currency: "ZZZ"},
			},
			wantErr: money.ErrUnknownCurrency,
		},
		{
			name: "RepoError",
			args: args{
				userID: "u1",
				params: transaction.CreateParams{AccountID: "a1", Type: transaction.TypeExpense},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errAny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repoMock)
			}

			svc := transaction.NewService(repoMock)
			got, err := svc.Create(context.Background(), tt.args.userID, tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(tt.wantErr, errAny) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

// errAny marks table rows that only care that some error came back.
var errAny = errors.New("any error")

func TestService_Update(t *testing.T) {
	t.Run("ClearsCategory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := transaction.NewMockRepository(ctrl)
		repoMock.EXPECT().
			UpdateTransaction(gomock.Any(), "u1", "t1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params transaction.UpdateParams) error {
				assert.True(t, params.Category.Set())
				assert.Nil(t, params.Category.Ptr())
				return nil
			})

		svc := transaction.NewService(repoMock)
		err := svc.Update(context.Background(), "u1", "t1", transaction.UpdateParams{
			Category: opt.Null[string](),
		})
		assert.NoError(t, err)
	})

	t.Run("NormalizesCurrency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		currency := "bdt"
		repoMock := transaction.NewMockRepository(ctrl)
		repoMock.EXPECT().
			UpdateTransaction(gomock.Any(), "u1", "t1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params transaction.UpdateParams) error {
				require.NotNil(t, params.Currency)
				assert.Equal(t, "BDT", *params.Currency)
				return nil
			})

		svc := transaction.NewService(repoMock)
		err := svc.Update(context.Background(), "u1", "t1", transaction.UpdateParams{Currency: &currency})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := transaction.NewMockRepository(ctrl)
		repoMock.EXPECT().
			UpdateTransaction(gomock.Any(), "u1", "missing", gomock.Any()).
			Return(repo.ErrNotFound)

		svc := transaction.NewService(repoMock)
		err := svc.Update(context.Background(), "u1", "missing", transaction.UpdateParams{})
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := transaction.NewMockRepository(ctrl)
	repoMock.EXPECT().
		GetTransaction(gomock.Any(), "u1", "t1").
		Return(&transaction.Transaction{ID: "t1", UserID: "u1"}, nil)
	repoMock.EXPECT().
		GetTransaction(gomock.Any(), "u2", "t1").
		Return(nil, repo.ErrNotFound)

	svc := transaction.NewService(repoMock)

	got, err := svc.Get(context.Background(), "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	// Another user never sees the row, even with the right id.
	_, err = svc.Get(context.Background(), "u2", "t1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := transaction.NewMockRepository(ctrl)
	repoMock.EXPECT().
		ListTransactions(gomock.Any(), "u1").
		Return([]*transaction.Transaction{{ID: "t1"}, {ID: "t2"}}, nil)

	svc := transaction.NewService(repoMock)
	got, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
