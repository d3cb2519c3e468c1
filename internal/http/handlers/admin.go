package handlers

import (
	"net/http"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/service"
)

// AdminHandler owns the admin-only endpoints.
type AdminHandler struct {
	svc      *service.AdminService
	resolver *auth.PrincipalResolver
}

func NewAdminHandler(svc *service.AdminService, resolver *auth.PrincipalResolver) *AdminHandler {
	return &AdminHandler{svc: svc, resolver: resolver}
}

// Register attaches the admin routes to the mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /api/v1/admin/users",
		middleware.RequireRole(h.resolver, models.RoleAdmin, http.HandlerFunc(h.handleListUsers)))
}

func (h *AdminHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	result, err := h.svc.ListUsers(r.Context(), page, size)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", result)
}
