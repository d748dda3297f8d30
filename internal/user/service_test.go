package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashiqdev/taka/internal/repo"
	"github.com/ashiqdev/taka/internal/user"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestService_Register(t *testing.T) {
	type args struct {
		name     string
		email    string
		password string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{name: "Ashiq", email: "ashiq@example.com", password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(nil, repo.ErrNotFound)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "NormalizesEmail",
			args: args{name: "Ashiq", email: "  Ashiq@Example.COM ", password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(nil, repo.ErrNotFound)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						assert.Equal(t, "ashiq@example.com", u.Email)
						return nil
					})
			},
		},
		{
			name: "EmailTaken",
			args: args{name: "Ashiq", email: "ashiq@example.com", password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(&user.User{ID: "existing"}, nil)
			},
			wantErr: user.ErrEmailTaken,
		},
		{
			name: "ConflictOnInsert",
			args: args{name: "Ashiq", email: "ashiq@example.com", password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(nil, repo.ErrNotFound)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(repo.ErrConflict)
			},
			wantErr: user.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repoMock)
			}

			svc := user.NewService(repoMock, bcrypt.MinCost)
			got, err := svc.Register(context.Background(), tt.args.name, tt.args.email, tt.args.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.NotEqual(t, tt.args.password, got.PasswordHash)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(t *testing.T, m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    "ashiq@example.com",
			password: "secret",
			setupMock: func(t *testing.T, m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(&user.User{ID: "u1", PasswordHash: hashOf(t, "secret")}, nil)
			},
		},
		{
			name:     "UnknownEmail",
			email:    "nobody@example.com",
			password: "secret",
			setupMock: func(t *testing.T, m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "WrongPassword",
			email:    "ashiq@example.com",
			password: "wrong",
			setupMock: func(t *testing.T, m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ashiq@example.com").
					Return(&user.User{ID: "u1", PasswordHash: hashOf(t, "secret")}, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := user.NewMockRepository(ctrl)
			tt.setupMock(t, repoMock)

			svc := user.NewService(repoMock, bcrypt.MinCost)
			got, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", got.ID)
		})
	}
}

func TestService_Signin(t *testing.T) {
	t.Run("ExistingUserLogsIn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := user.NewMockRepository(ctrl)
		repoMock.EXPECT().
			GetUserByEmail(gomock.Any(), "ashiq@example.com").
			Return(&user.User{ID: "u1", PasswordHash: hashOf(t, "secret")}, nil)

		svc := user.NewService(repoMock, bcrypt.MinCost)
		got, err := svc.Signin(context.Background(), "", "ashiq@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
	})

	t.Run("ExistingUserWrongPassword", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := user.NewMockRepository(ctrl)
		repoMock.EXPECT().
			GetUserByEmail(gomock.Any(), "ashiq@example.com").
			Return(&user.User{ID: "u1", PasswordHash: hashOf(t, "secret")}, nil)

		svc := user.NewService(repoMock, bcrypt.MinCost)
		_, err := svc.Signin(context.Background(), "Ashiq", "ashiq@example.com", "wrong")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("NewUserRegisters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := user.NewMockRepository(ctrl)
		// The signin lookup misses, then Register checks again before insert.
		repoMock.EXPECT().
			GetUserByEmail(gomock.Any(), "new@example.com").
			Return(nil, repo.ErrNotFound).
			Times(2)
		repoMock.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := user.NewService(repoMock, bcrypt.MinCost)
		got, err := svc.Signin(context.Background(), "Newbie", "new@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "Newbie", got.Name)
	})

	t.Run("NewUserWithoutName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := user.NewMockRepository(ctrl)
		repoMock.EXPECT().
			GetUserByEmail(gomock.Any(), "new@example.com").
			Return(nil, repo.ErrNotFound)

		svc := user.NewService(repoMock, bcrypt.MinCost)
		_, err := svc.Signin(context.Background(), "", "new@example.com", "secret")
		assert.ErrorIs(t, err, user.ErrNameRequired)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := user.NewMockRepository(ctrl)
		repoMock.EXPECT().
			GetUserByEmail(gomock.Any(), "ashiq@example.com").
			Return(nil, errors.New("db down"))

		svc := user.NewService(repoMock, bcrypt.MinCost)
		_, err := svc.Signin(context.Background(), "Ashiq", "ashiq@example.com", "secret")
		assert.Error(t, err)
	})
}
