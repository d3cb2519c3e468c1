package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/service"
)

// PostHandler owns the post CRUD endpoints. Reads are public; writes require
// authentication, and edits pass the service-level ownership gate.
type PostHandler struct {
	svc      *service.PostService
	resolver *auth.PrincipalResolver
}

func NewPostHandler(svc *service.PostService, resolver *auth.PrincipalResolver) *PostHandler {
	return &PostHandler{svc: svc, resolver: resolver}
}

// Register attaches the post routes to the mux.
func (h *PostHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/posts", h.handleList)
	mux.HandleFunc("GET /api/v1/posts/{id}", h.handleGet)
	mux.Handle("POST /api/v1/posts", middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleCreate)))
	mux.Handle("PUT /api/v1/posts/{id}", middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/v1/posts/{id}", middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleDelete)))
}

func (h *PostHandler) handleList(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respond.Error(w, r, errInvalidCategoryFilter)
			return
		}
		categoryID = &id
	}

	result, err := h.svc.List(r.Context(), categoryID, r.URL.Query().Get("keyword"), page, size)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", result)
}

func (h *PostHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	post, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", post)
}

func (h *PostHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	var req dto.PostCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	post, err := h.svc.Create(r.Context(), req, principal)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Post created", post)
}

func (h *PostHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req dto.PostUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	post, err := h.svc.Update(r.Context(), id, req, principal)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Post updated", post)
}

func (h *PostHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id, principal); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
