package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/config"
	"github.com/bloghub/bloghub-be/internal/http/handlers"
	"github.com/bloghub/bloghub-be/internal/middleware"
	"github.com/bloghub/bloghub-be/internal/service"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// Stores bundles the persistence contracts the server consumes.
type Stores struct {
	Users      storage.UserStore
	Posts      storage.PostStore
	Categories storage.CategoryStore
	Comments   storage.CommentStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires the auth core, services, handlers and middleware into a ready
// server.
func New(cfg config.Config, stores Stores, log *zap.Logger) *Server {
	hasher := auth.NewCredentialHasher(0)
	codec := auth.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Lifetime())
	resolver := auth.NewPrincipalResolver(codec, log)

	authSvc := service.NewAuthService(stores.Users, hasher, codec, log)
	postSvc := service.NewPostService(stores.Posts, stores.Categories)
	categorySvc := service.NewCategoryService(stores.Categories)
	commentSvc := service.NewCommentService(stores.Comments, stores.Posts)
	adminSvc := service.NewAdminService(stores.Users)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(authSvc, resolver).Register(mux)
	handlers.NewPostHandler(postSvc, resolver).Register(mux)
	handlers.NewCategoryHandler(categorySvc, resolver).Register(mux)
	handlers.NewCommentHandler(commentSvc, resolver).Register(mux)
	handlers.NewAdminHandler(adminSvc, resolver).Register(mux)

	handler := middleware.RequestID(
		middleware.Logging(log,
			middleware.CORS(cfg.CORSOrigins, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
