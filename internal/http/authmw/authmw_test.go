package authmw_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/http/authmw"
)

type verifierFunc func(token string) (string, error)

func (f verifierFunc) Verify(token string) (string, error) { return f(token) }

func TestRequireUser(t *testing.T) {
	verifier := verifierFunc(func(token string) (string, error) {
		if token == "good-token" {
			return "u1", nil
		}

		return "", errors.New("bad token")
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authmw.UserID(r.Context())
		require.True(t, ok)
		w.Write([]byte(userID))
	})

	handler := authmw.RequireUser(verifier)(next)

	type testCase struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}

	tests := []testCase{
		{
			name:       "Valid",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
			wantBody:   "u1",
		},
		{
			name:       "MissingHeader",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "WrongScheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "BadToken",
			header:     "Bearer forged",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := authmw.UserID(req.Context())
	assert.False(t, ok)
}
