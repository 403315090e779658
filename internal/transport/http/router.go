package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eblog_backend/internal/handler"
	"eblog_backend/internal/httputil"
	authmw "eblog_backend/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler *handler.AuthHandler
	PostHandler *handler.PostHandler
	JWTSecret   string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			httputil.WriteJSON(w, 200, map[string]string{"message": "Welcome to Eblog API!"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.AuthHandler.SignUp)
			r.Post("/signin", cfg.AuthHandler.SignIn)
			r.Post("/google-auth", cfg.AuthHandler.GoogleAuth)
		})

		r.Route("/post", func(r chi.Router) {
			r.Get("/image-upload-url", cfg.PostHandler.GetImageUploadURL)
			r.With(authmw.AuthMiddleware(cfg.JWTSecret)).Post("/create-post", cfg.PostHandler.CreatePost)
		})
	})

	return r
}
