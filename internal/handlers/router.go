package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sambbaron/posts/internal/middleware"
	"github.com/sambbaron/posts/internal/utils"
)

// NewRouter mounts the posts API under /api and a health probe at /health.
// Everything under /api passes content negotiation before routing, so an
// unacceptable Accept header wins over an unknown path or method.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(methodNotAllowed(r))

	r.Get("/health", h.Health)

	root := r
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Negotiate)
		r.NotFound(routeNotFound)
		r.MethodNotAllowed(methodNotAllowed(root))

		r.Get("/posts", h.Posts.GetPosts)
		r.Post("/posts", h.Posts.CreatePost)
		r.Get("/posts/{id}", h.Posts.GetPostByID)
		r.Delete("/posts/{id}", h.Posts.DeletePost)
	})

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, r, utils.NewError(utils.NotFound, "Resource not found"))
}

var routeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// methodNotAllowed answers 405 with an Allow header listing the methods
// routes knows for the request path.
func methodNotAllowed(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, m := range routeMethods {
			if routes.Match(chi.NewRouteContext(), m, r.URL.Path) {
				allowed = append(allowed, m)
			}
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, r, utils.NewError(utils.MethodNotAllowed, "Method not allowed"))
	}
}

// recoverer turns a panic into the standard 500 envelope.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				chimw.PrintPrettyStack(rec)
				utils.WriteError(w, r, utils.Internal(fmt.Errorf("panic: %v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
