package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/opt"
	"github.com/ashiqdev/taka/internal/timex"
	"github.com/ashiqdev/taka/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// createTransactionRequest takes the date through timex.Time: mobile
// clients send RFC 3339, naive datetimes, and epoch strings interchangeably.
type createTransactionRequest struct {
	AccountID   string           `json:"account_id"`
	Type        transaction.Type `json:"type"`
	Amount      float64          `json:"amount"`
	Currency    string           `json:"currency"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        timex.Time       `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "invalid transaction type")
		return
	}

	if req.AccountID == "" {
		respond.Error(w, http.StatusBadRequest, "account_id is required")
		return
	}

	tx, err := h.svc.Create(r.Context(), userID, transaction.CreateParams{
		AccountID:   req.AccountID,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date.Time,
	})
	if err != nil {
		respond.StoreError(w, err, "transaction")
		return
	}

	respond.Data(w, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	txs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "transaction")
		return
	}

	respond.Data(w, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	tx, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "transaction")
		return
	}

	respond.Data(w, toResponse(tx))
}

type updateTransactionRequest struct {
	AccountID   *string           `json:"account_id"`
	Type        *transaction.Type `json:"type"`
	Amount      *float64          `json:"amount"`
	Currency    *string           `json:"currency"`
	Category    opt.Field[string] `json:"category"`
	Description opt.Field[string] `json:"description"`
	Date        *timex.Time       `json:"date"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "invalid transaction type")
		return
	}

	params := transaction.UpdateParams{
		AccountID:   req.AccountID,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	}

	if req.Date != nil && !req.Date.IsZero() {
		params.Date = &req.Date.Time
	}

	if err := h.svc.Update(r.Context(), userID, chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "transaction")
		return
	}

	respond.Message(w, "transaction updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "transaction")
		return
	}

	respond.Message(w, "transaction deleted successfully")
}
