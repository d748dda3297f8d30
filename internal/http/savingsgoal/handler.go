package savingsgoal

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/savingsgoal"
	"github.com/ashiqdev/taka/internal/timex"
)

type Handler struct {
	svc *savingsgoal.Service
}

func NewHandler(svc *savingsgoal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createGoalRequest struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TargetAmount float64    `json:"target_amount"`
	Currency     string     `json:"currency"`
	TargetDate   timex.Time `json:"target_date"`
	Description  *string    `json:"description"`
	AccountID    *string    `json:"account_id"`
	Priority     string     `json:"priority"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if req.TargetDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "target_date is required")
		return
	}

	g, err := h.svc.Create(r.Context(), userID, savingsgoal.CreateParams{
		ID:           req.ID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Currency:     req.Currency,
		TargetDate:   req.TargetDate.Time,
		Description:  req.Description,
		AccountID:    req.AccountID,
		Priority:     req.Priority,
	})
	if err != nil {
		respond.StoreError(w, err, "savings goal")
		return
	}

	respond.Data(w, toResponse(g))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	goals, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "savings goal")
		return
	}

	respond.Data(w, toResponseList(goals))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	g, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "savings goal")
		return
	}

	respond.Data(w, toResponse(g))
}

type updateGoalRequest struct {
	Name          *string           `json:"name"`
	TargetAmount  *float64          `json:"target_amount"`
	CurrentAmount *float64          `json:"current_amount"`
	Currency      *string           `json:"currency"`
	TargetDate    *timex.Time       `json:"target_date"`
	Description   opt.Field[string] `json:"description"`
	AccountID     opt.Field[string] `json:"account_id"`
	Priority      *string           `json:"priority"`
	IsCompleted   *bool             `json:"is_completed"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	params := savingsgoal.UpdateParams{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Currency:      req.Currency,
		Description:   req.Description,
		AccountID:     req.AccountID,
		Priority:      req.Priority,
		IsCompleted:   req.IsCompleted,
	}

	if req.TargetDate != nil && !req.TargetDate.IsZero() {
		params.TargetDate = &req.TargetDate.Time
	}

	if err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "savings goal")
		return
	}

	respond.Message(w, "savings goal updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "savings goal")
		return
	}

	respond.Message(w, "savings goal deleted successfully")
}
