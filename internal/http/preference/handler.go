package preference

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
	"github.com/ashiqdev/taka/internal/preference"
)

type Handler struct {
	svc *preference.Service
}

func NewHandler(svc *preference.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

type preferenceResponse struct {
	UserID          string     `json:"user_id"`
	DisplayCurrency string     `json:"display_currency"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func toResponse(p *preference.Preference) preferenceResponse {
	return preferenceResponse{
		UserID:          p.UserID,
		DisplayCurrency: p.DisplayCurrency,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	p, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		respond.StoreError(w, err, "preference")
		return
	}

	respond.Data(w, toResponse(p))
}

type updatePreferenceRequest struct {
	DisplayCurrency *string `json:"display_currency"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Update(r.Context(), userID, preference.UpdateParams{
		DisplayCurrency: req.DisplayCurrency,
	})
	if err != nil {
		respond.StoreError(w, err, "preference")
		return
	}

	respond.Data(w, toResponse(p))
}
