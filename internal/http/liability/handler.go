package liability

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/liability"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/timex"
)

type Handler struct {
	svc *liability.Service
}

func NewHandler(svc *liability.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createLiabilityRequest struct {
	ID                string     `json:"id"`
	PersonName        string     `json:"person_name"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	DueDate           timex.Time `json:"due_date"`
	IsPaid            *bool      `json:"is_paid"`
	Description       *string    `json:"description"`
	IsHistoricalEntry *bool      `json:"is_historical_entry"`
	AccountID         *string    `json:"account_id"`
	TransactionID     *string    `json:"transaction_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.PersonName == "" {
		respond.Error(w, http.StatusBadRequest, "person_name is required")
		return
	}

	if req.DueDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "due_date is required")
		return
	}

	params := liability.CreateParams{
		ID:            req.ID,
		PersonName:    req.PersonName,
		Amount:        req.Amount,
		Currency:      req.Currency,
		DueDate:       req.DueDate.Time,
		Description:   req.Description,
		AccountID:     req.AccountID,
		TransactionID: req.TransactionID,
	}

	if req.IsPaid != nil {
		params.IsPaid = *req.IsPaid
	}

	if req.IsHistoricalEntry != nil {
		params.IsHistoricalEntry = *req.IsHistoricalEntry
	}

	l, err := h.svc.Create(r.Context(), userID, params)
	if err != nil {
		respond.StoreError(w, err, "liability")
		return
	}

	respond.Data(w, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	liabilities, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "liability")
		return
	}

	respond.Data(w, toResponseList(liabilities))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	l, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "liability")
		return
	}

	respond.Data(w, toResponse(l))
}

type updateLiabilityRequest struct {
	PersonName        *string           `json:"person_name"`
	Amount            *float64          `json:"amount"`
	Currency          *string           `json:"currency"`
	DueDate           *timex.Time       `json:"due_date"`
	IsPaid            *bool             `json:"is_paid"`
	Description       opt.Field[string] `json:"description"`
	IsHistoricalEntry *bool             `json:"is_historical_entry"`
	AccountID         opt.Field[string] `json:"account_id"`
	TransactionID     opt.Field[string] `json:"transaction_id"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateLiabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	params := liability.UpdateParams{
		PersonName:        req.PersonName,
		Amount:            req.Amount,
		Currency:          req.Currency,
		IsPaid:            req.IsPaid,
		Description:       req.Description,
		IsHistoricalEntry: req.IsHistoricalEntry,
		AccountID:         req.AccountID,
		TransactionID:     req.TransactionID,
	}

	if req.DueDate != nil && !req.DueDate.IsZero() {
		params.DueDate = &req.DueDate.Time
	}

	if err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "liability")
		return
	}

	respond.Message(w, "liability updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "liability")
		return
	}

	respond.Message(w, "liability deleted successfully")
}
