package authn_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashiqdev/taka/internal/auth"
	"github.com/ashiqdev/taka/internal/http/authn"
	"github.com/ashiqdev/taka/internal/repo"
	"github.com/ashiqdev/taka/internal/user"
)

func newServer(t *testing.T) (*user.MockRepository, *auth.TokenIssuer, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repoMock := user.NewMockRepository(ctrl)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	handler := authn.NewHandler(user.NewService(repoMock, bcrypt.MinCost), issuer)

	router := chi.NewRouter()
	router.Route("/auth", handler.Routes)

	return repoMock, issuer, router
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestSignup(t *testing.T) {
	repoMock, issuer, router := newServer(t)

	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "ashiq@example.com").
		Return(nil, repo.ErrNotFound)
	repoMock.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	rec := post(t, router, "/auth/signup",
		`{"name": "Ashiq", "email": "Ashiq@Example.com", "password": "secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Ashiq", body.User.Name)
	assert.Equal(t, "ashiq@example.com", body.User.Email)

	// The issued token verifies back to the new user's id.
	userID, err := issuer.Verify(body.Token)
	require.NoError(t, err)
	assert.Equal(t, body.User.ID, userID)
}

func TestSignup_EmailTaken(t *testing.T) {
	repoMock, _, router := newServer(t)

	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "ashiq@example.com").
		Return(&user.User{ID: "u1"}, nil)

	rec := post(t, router, "/auth/signup",
		`{"name": "Ashiq", "email": "ashiq@example.com", "password": "secret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repoMock, _, router := newServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	// Unknown email and wrong password produce the same response, so the
	// endpoint cannot be used to probe which addresses are registered.
	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, repo.ErrNotFound)
	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "ashiq@example.com").
		Return(&user.User{ID: "u1", PasswordHash: string(hash)}, nil)

	recUnknown := post(t, router, "/auth/login",
		`{"email": "nobody@example.com", "password": "secret"}`)
	recWrong := post(t, router, "/auth/login",
		`{"email": "ashiq@example.com", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.JSONEq(t, recUnknown.Body.String(), recWrong.Body.String())
}

func TestSignin_RegistersUnknownEmail(t *testing.T) {
	repoMock, _, router := newServer(t)

	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, repo.ErrNotFound).
		Times(2)
	repoMock.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	rec := post(t, router, "/auth/signin",
		`{"name": "Newbie", "email": "new@example.com", "password": "secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignin_UnknownEmailWithoutName(t *testing.T) {
	repoMock, _, router := newServer(t)

	repoMock.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, repo.ErrNotFound)

	rec := post(t, router, "/auth/signin",
		`{"email": "new@example.com", "password": "secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
