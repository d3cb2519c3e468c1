package handlers

import (
	"net/http"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/service"
)

// CategoryHandler owns the category endpoints. Reads are public; mutations
// are restricted to the ADMIN role.
type CategoryHandler struct {
	svc      *service.CategoryService
	resolver *auth.PrincipalResolver
}

func NewCategoryHandler(svc *service.CategoryService, resolver *auth.PrincipalResolver) *CategoryHandler {
	return &CategoryHandler{svc: svc, resolver: resolver}
}

// Register attaches the category routes to the mux.
func (h *CategoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/categories", h.handleList)
	mux.HandleFunc("GET /api/v1/categories/{id}", h.handleGet)
	mux.Handle("POST /api/v1/categories",
		middleware.RequireRole(h.resolver, models.RoleAdmin, http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/v1/categories/{id}",
		middleware.RequireRole(h.resolver, models.RoleAdmin, http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/v1/categories/{id}",
		middleware.RequireRole(h.resolver, models.RoleAdmin, http.HandlerFunc(h.handleDelete)))
}

func (h *CategoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", categories)
}

func (h *CategoryHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	category, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", category)
}

func (h *CategoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	category, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Category created", category)
}

func (h *CategoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req dto.CategoryUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	category, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Category updated", category)
}

func (h *CategoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
