package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ashiqdev/taka/internal/account"
	"github.com/ashiqdev/taka/internal/money"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/repo"
)

func TestService_Create(t *testing.T) {
	type args struct {
		userID string
		params account.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *account.MockRepository)
		check     func(t *testing.T, got *account.Account)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				userID: "u1",
				params: account.CreateParams{
					Name:     "Main Wallet",
					Type:     account.TypeWallet,
					Balance:  1500,
					Currency: "usd",
				},
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *account.Account) {
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, "u1", got.UserID)
				assert.Equal(t, "USD", got.Currency)
				assert.Equal(t, got.CreatedAt, got.UpdatedAt)
			},
		},
		{
			name: "DefaultCurrency",
			args: args{
				userID: "u1",
				params: account.CreateParams{Name: "Cash", Type: account.TypeCash},
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *account.Account) {
				assert.Equal(t, money.DefaultCurrency, got.Currency)
			},
		},
		{
			name: "KeepsCallerID",
			args: args{
				userID: "u1",
				params: account.CreateParams{ID: "acc-42", Name: "Bank", Type: account.TypeBank},
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *account.Account) {
				assert.Equal(t, "acc-42", got.ID)
			},
		},
		{
			name: "UnknownCurrency",
			args: args{
				userID: "u1",
				params: account.CreateParams{Name: "Bank", Type: account.TypeBank, Currency: "ZZZ"},
			},
			wantErr: money.ErrUnknownCurrency,
		},
		{
			name: "Conflict",
			args: args{
				userID: "u1",
				params: account.CreateParams{ID: "acc-42", Name: "Bank", Type: account.TypeBank},
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(repo.ErrConflict)
			},
			wantErr: repo.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repoMock)
			}

			svc := account.NewService(repoMock)
			got, err := svc.Create(context.Background(), tt.args.userID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
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

func TestService_Update(t *testing.T) {
	t.Run("NormalizesCurrency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		currency := "eur"
		repoMock := account.NewMockRepository(ctrl)
		repoMock.EXPECT().
			UpdateAccount(gomock.Any(), "u1", "a1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params account.UpdateParams) error {
				require.NotNil(t, params.Currency)
				assert.Equal(t, "EUR", *params.Currency)
				return nil
			})

		svc := account.NewService(repoMock)
		err := svc.Update(context.Background(), "u1", "a1", account.UpdateParams{Currency: &currency})
		assert.NoError(t, err)
	})

	t.Run("UnknownCurrency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		currency := "ZZZ"
		svc := account.NewService(account.NewMockRepository(ctrl))
		err := svc.Update(context.Background(), "u1", "a1", account.UpdateParams{Currency: &currency})
		assert.ErrorIs(t, err, money.ErrUnknownCurrency)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := account.NewMockRepository(ctrl)
		repoMock.EXPECT().
			UpdateAccount(gomock.Any(), "u1", "missing", gomock.Any()).
			Return(repo.ErrNotFound)

		svc := account.NewService(repoMock)
		err := svc.Update(context.Background(), "u1", "missing", account.UpdateParams{})
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestUpdateParams_Empty(t *testing.T) {
	assert.True(t, account.UpdateParams{}.Empty())

	name := "x"
	assert.False(t, account.UpdateParams{Name: &name}.Empty())
	assert.False(t, account.UpdateParams{CreditLimit: opt.Null[float64]()}.Empty())
	assert.False(t, account.UpdateParams{CreditLimit: opt.Of(500.0)}.Empty())
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := account.NewMockRepository(ctrl)
	repoMock.EXPECT().
		DeleteAccount(gomock.Any(), "u1", "a1").
		Return(nil)
	repoMock.EXPECT().
		DeleteAccount(gomock.Any(), "u2", "a1").
		Return(repo.ErrNotFound)

	svc := account.NewService(repoMock)
	assert.NoError(t, svc.Delete(context.Background(), "u1", "a1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "u2", "a1"), repo.ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := account.NewMockRepository(ctrl)
	repoMock.EXPECT().
		ListAccounts(gomock.Any(), "u1").
		Return([]*account.Account{{ID: "a1"}, {ID: "a2"}}, nil)

	svc := account.NewService(repoMock)
	got, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := account.NewMockRepository(ctrl)
	repoMock.EXPECT().
		ListAccounts(gomock.Any(), "u1").
		Return(nil, errors.New("db down"))

	svc := account.NewService(repoMock)
	_, err := svc.List(context.Background(), "u1")
	assert.Error(t, err)
}
