package loan

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/loan"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/timex"
)

type Handler struct {
	svc *loan.Service
}

func NewHandler(svc *loan.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createLoanRequest struct {
	ID                string      `json:"id"`
	PersonName        string      `json:"person_name"`
	Amount            float64     `json:"amount"`
	Currency          string      `json:"currency"`
	LoanDate          timex.Time  `json:"loan_date"`
	ReturnDate        *timex.Time `json:"return_date"`
	IsReturned        *bool       `json:"is_returned"`
	Description       *string     `json:"description"`
	IsHistoricalEntry *bool       `json:"is_historical_entry"`
	AccountID         *string     `json:"account_id"`
	TransactionID     *string     `json:"transaction_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.PersonName == "" {
		respond.Error(w, http.StatusBadRequest, "person_name is required")
		return
	}

	if req.LoanDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "loan_date is required")
		return
	}

	params := loan.CreateParams{
		ID:            req.ID,
		PersonName:    req.PersonName,
		Amount:        req.Amount,
		Currency:      req.Currency,
		LoanDate:      req.LoanDate.Time,
		Description:   req.Description,
		AccountID:     req.AccountID,
		TransactionID: req.TransactionID,
	}

	if req.ReturnDate != nil && !req.ReturnDate.IsZero() {
		params.ReturnDate = &req.ReturnDate.Time
	}

	if req.IsReturned != nil {
		params.IsReturned = *req.IsReturned
	}

	if req.IsHistoricalEntry != nil {
		params.IsHistoricalEntry = *req.IsHistoricalEntry
	}

	l, err := h.svc.Create(r.Context(), userID, params)
	if err != nil {
		respond.StoreError(w, err, "loan")
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

	loans, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "loan")
		return
	}

	respond.Data(w, toResponseList(loans))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	l, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "loan")
		return
	}

	respond.Data(w, toResponse(l))
}

type updateLoanRequest struct {
	PersonName        *string               `json:"person_name"`
	Amount            *float64              `json:"amount"`
	Currency          *string               `json:"currency"`
	LoanDate          *timex.Time           `json:"loan_date"`
	ReturnDate        opt.Field[timex.Time] `json:"return_date"`
	IsReturned        *bool                 `json:"is_returned"`
	Description       opt.Field[string]     `json:"description"`
	IsHistoricalEntry *bool                 `json:"is_historical_entry"`
	AccountID         opt.Field[string]     `json:"account_id"`
	TransactionID     opt.Field[string]     `json:"transaction_id"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	params := loan.UpdateParams{
		PersonName:        req.PersonName,
		Amount:            req.Amount,
		Currency:          req.Currency,
		IsReturned:        req.IsReturned,
		Description:       req.Description,
		IsHistoricalEntry: req.IsHistoricalEntry,
		AccountID:         req.AccountID,
		TransactionID:     req.TransactionID,
	}

	if req.LoanDate != nil && !req.LoanDate.IsZero() {
		params.LoanDate = &req.LoanDate.Time
	}

	if req.ReturnDate.Set() {
		if req.ReturnDate.Valid() {
			params.ReturnDate = opt.Of(req.ReturnDate.Value().Time)
		} else {
			params.ReturnDate = opt.Null[time.Time]()
		}
	}

	if err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "loan")
		return
	}

	respond.Message(w, "loan updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "loan")
		return
	}

	respond.Message(w, "loan deleted successfully")
}
