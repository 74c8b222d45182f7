package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kiesman99/imgsplit/internal/api"
)

// APIPrefix is where the generated routes are mounted
const APIPrefix = "/api/v1"

// NewRouter wires srv into a chi router with the standard middleware stack
func NewRouter(srv *Server, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors)

	r.Route(APIPrefix, func(r chi.Router) {
		api.HandlerWithOptions(srv, api.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: srv.ParamErrorHandler,
		})
	})

	// Legacy health endpoint without the API prefix
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, APIPrefix+"/health", http.StatusMovedPermanently)
	})

	return r
}

// cors allows browser clients on other origins to use the API
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
