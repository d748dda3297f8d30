package budget

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/budget"
	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createBudgetRequest struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Period   string  `json:"period"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Category == "" {
		respond.Error(w, http.StatusBadRequest, "category is required")
		return
	}

	b, err := h.svc.Create(r.Context(), userID, budget.CreateParams{
		ID:       req.ID,
		Category: req.Category,
		Amount:   req.Amount,
		Currency: req.Currency,
		Period:   req.Period,
	})
	if err != nil {
		respond.StoreError(w, err, "budget")
		return
	}

	respond.Data(w, toResponse(b))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	budgets, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "budget")
		return
	}

	respond.Data(w, toResponseList(budgets))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	b, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "budget")
		return
	}

	respond.Data(w, toResponse(b))
}

type updateBudgetRequest struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
	Period   *string  `json:"period"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), budget.UpdateParams{
		Category: req.Category,
		Amount:   req.Amount,
		Currency: req.Currency,
		Period:   req.Period,
	})
	if err != nil {
		respond.StoreError(w, err, "budget")
		return
	}

	respond.Message(w, "budget updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "budget")
		return
	}

	respond.Message(w, "budget deleted successfully")
}
