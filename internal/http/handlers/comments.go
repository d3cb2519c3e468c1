package handlers

import (
	"net/http"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/service"
)

// CommentHandler owns the comment endpoints.
type CommentHandler struct {
	svc      *service.CommentService
	resolver *auth.PrincipalResolver
}

func NewCommentHandler(svc *service.CommentService, resolver *auth.PrincipalResolver) *CommentHandler {
	return &CommentHandler{svc: svc, resolver: resolver}
}

// Register attaches the comment routes to the mux.
func (h *CommentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/posts/{postId}/comments", h.handleList)
	mux.Handle("POST /api/v1/posts/{postId}/comments",
		middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleAdd)))
	mux.Handle("DELETE /api/v1/comments/{commentId}",
		middleware.RequireAuth(h.resolver, http.HandlerFunc(h.handleDelete)))
}

func (h *CommentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	comments, err := h.svc.ListByPost(r.Context(), postID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "OK", comments)
}

func (h *CommentHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	postID, err := pathID(r, "postId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var req dto.CommentCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	comment, err := h.svc.Add(r.Context(), postID, req, principal)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Comment added", comment)
}

func (h *CommentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFrom(r.Context())
	commentID, err := pathID(r, "commentId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), commentID, principal); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
