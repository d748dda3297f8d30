package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashiqdev/taka/internal/category"
	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createCategoryRequest struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Icon  string        `json:"icon"`
	Color string        `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := authmw.UserID(r.Context()); !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateParams{
		ID:    req.ID,
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respond.StoreError(w, err, "category")
		return
	}

	respond.Data(w, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	if _, ok := authmw.UserID(r.Context()); !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	categories, err := h.svc.List(r.Context())
	if err != nil {
		respond.StoreError(w, err, "category")
		return
	}

	respond.Data(w, toResponseList(categories))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	if _, ok := authmw.UserID(r.Context()); !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.StoreError(w, err, "category")
		return
	}

	respond.Data(w, toResponse(c))
}

type updateCategoryRequest struct {
	Name  *string        `json:"name"`
	Type  *category.Type `json:"type"`
	Icon  *string        `json:"icon"`
	Color *string        `json:"color"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if _, ok := authmw.UserID(r.Context()); !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		respond.Error(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	params := category.UpdateParams{
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), params); err != nil {
		respond.StoreError(w, err, "category")
		return
	}

	respond.Message(w, "category updated successfully")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := authmw.UserID(r.Context()); !ok {
		respond.AuthError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.StoreError(w, err, "category")
		return
	}

	respond.Message(w, "category deleted successfully")
}
