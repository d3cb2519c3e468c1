package handlers

import (
	"net/http"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/service"
)

// AuthHandler owns the register/login/me endpoints.
type AuthHandler struct {
	svc      *service.AuthService
	resolver *auth.PrincipalResolver
}

func NewAuthHandler(svc *service.AuthService, resolver *auth.PrincipalResolver) *AuthHandler {
	return &AuthHandler{svc: svc, resolver: resolver}
}

// Register attaches the auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.Handle("GET /api/v1/auth/me", middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Registered successfully", result)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	user, err := h.svc.CurrentUser(r.Context(), principal)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", user)
}
