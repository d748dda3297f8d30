package recurring

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/recurring"
	"github.com/ashiqdev/taka/internal/timex"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRecurringRequest struct {
	ID            string      `json:"id"`
	AccountID     string      `json:"account_id"`
	Type          string      `json:"type"`
	Amount        float64     `json:"amount"`
	Currency      string      `json:"currency"`
	Category      *string     `json:"category"`
	Description   *string     `json:"description"`
	Frequency     string      `json:"frequency"`
	StartDate     timex.Time  `json:"start_date"`
	EndDate       *timex.Time `json:"end_date"`
	NextDueDate   timex.Time  `json:"next_due_date"`
	IsActive      *bool       `json:"is_active"`
	SavingsGoalID *string     `json:"savings_goal_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.AccountID == "" {
		respond.Error(w, http.StatusBadRequest, "account_id is required")
		return
	}

	if req.Type == "" {
		respond.Error(w, http.StatusBadRequest, "type is required")
		return
	}

	if req.StartDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "start_date is required")
		return
	}

	if req.NextDueDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "next_due_date is required")
		return
	}

	params := recurring.CreateParams{
		ID:            req.ID,
		AccountID:     req.AccountID,
		Type:          req.Type,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Category:      req.Category,
		Description:   req.Description,
		Frequency:     req.Frequency,
		StartDate:     req.StartDate.Time,
		NextDueDate:   req.NextDueDate.Time,
		IsActive:      req.IsActive,
		SavingsGoalID: req.SavingsGoalID,
	}

	if req.EndDate != nil && !req.EndDate.IsZero() {
		params.EndDate = &req.EndDate.Time
	}

	rt, err := h.svc.Create(r.Context(), userID, params)
	if err != nil {
		respond.StoreError(w, err, "recurring transaction")
		return
	}

	respond.Data(w, toResponse(rt))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	rts, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "recurring transaction")
		return
	}

	respond.Data(w, toResponseList(rts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	rt, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "recurring transaction")
		return
	}

	respond.Data(w, toResponse(rt))
}

type updateRecurringRequest struct {
	AccountID     *string               `json:"account_id"`
	Type          *string               `json:"type"`
	Amount        *float64              `json:"amount"`
	Currency      *string               `json:"currency"`
	Category      opt.Field[string]     `json:"category"`
	Description   opt.Field[string]     `json:"description"`
	Frequency     *string               `json:"frequency"`
	StartDate     *timex.Time           `json:"start_date"`
	EndDate       opt.Field[timex.Time] `json:"end_date"`
	NextDueDate   *timex.Time           `json:"next_due_date"`
	IsActive      *bool                 `json:"is_active"`
	SavingsGoalID opt.Field[string]     `json:"savings_goal_id"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	params := recurring.UpdateParams{
		AccountID:     req.AccountID,
		Type:          req.Type,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Category:      req.Category,
		Description:   req.Description,
		Frequency:     req.Frequency,
		IsActive:      req.IsActive,
		SavingsGoalID: req.SavingsGoalID,
	}

	if req.StartDate != nil && !req.StartDate.IsZero() {
		params.StartDate = &req.StartDate.Time
	}

	if req.NextDueDate != nil && !req.NextDueDate.IsZero() {
		params.NextDueDate = &req.NextDueDate.Time
	}

	if req.EndDate.Set() {
		if req.EndDate.Valid() {
			params.EndDate = opt.Of(req.EndDate.Value().Time)
		} else {
			params.EndDate = opt.Null[time.Time]()
		}
	}

	if err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "recurring transaction")
		return
	}

	respond.Message(w, "recurring transaction updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "recurring transaction")
		return
	}

	respond.Message(w, "recurring transaction deleted successfully")
}
