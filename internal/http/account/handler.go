package account

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/account"
	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/opt"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createAccountRequest struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        account.Type `json:"type"`
	Balance     float64      `json:"balance"`
	Currency    string       `json:"currency"`
	CreditLimit *float64     `json:"credit_limit"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "invalid account type")
		return
	}

	a, err := h.svc.Create(r.Context(), userID, account.CreateParams{
		ID:          req.ID,
		Name:        req.Name,
		Type:        req.Type,
		Balance:     req.Balance,
		Currency:    req.Currency,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		respond.StoreError(w, err, "account")
		return
	}

	respond.Data(w, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	accounts, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "account")
		return
	}

	respond.Data(w, toResponseList(accounts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	a, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "account")
		return
	}

	respond.Data(w, toResponse(a))
}

type updateAccountRequest struct {
	Name        *string            `json:"name"`
	Type        *account.Type      `json:"type"`
	Balance     *float64           `json:"balance"`
	Currency    *string            `json:"currency"`
	CreditLimit opt.Field[float64] `json:"credit_limit"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "invalid account type")
		return
	}

	err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), account.UpdateParams{
		Name:        req.Name,
		Type:        req.Type,
		Balance:     req.Balance,
		Currency:    req.Currency,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		respond.StoreError(w, err, "account")
		return
	}

	respond.Message(w, "account updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "account")
		return
	}

	respond.Message(w, "account deleted successfully")
}
