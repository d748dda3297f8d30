// Package authn exposes the signup, login and signin endpoints.
package authn

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/user"
)

// TokenIssuer mints a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type Handler struct {
	users  *user.Service
	tokens TokenIssuer
}

func NewHandler(users *user.Service, tokens TokenIssuer) *Handler {
	return &Handler{users: users, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Post("/signin", h.signin)
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// respondWithToken issues a token for u and writes the {token, user} body.
func (h *Handler) respondWithToken(w http.ResponseWriter, u *user.User) {
	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		respond.AuthError(w, http.StatusInternalServerError, "failed to create token")

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(authResponse{Token: token, User: toUserResponse(u)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// authError maps user-service failures to the auth error envelope.
func authError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		respond.AuthError(w, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		respond.AuthError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrNameRequired):
		respond.AuthError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("auth request failed", "error", err)
		respond.AuthError(w, http.StatusInternalServerError, "internal error")
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.AuthError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		authError(w, err)
		return
	}

	h.respondWithToken(w, u)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.AuthError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		authError(w, err)
		return
	}

	h.respondWithToken(w, u)
}

type signinRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signin logs in when the email exists and registers otherwise, so mobile
// clients need a single entry point.
func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.AuthError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.Signin(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		authError(w, err)
		return
	}

	h.respondWithToken(w, u)
}
