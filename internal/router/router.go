package router

import (
	"encoding/json"
	"net/http"
	"time"

	"techmart/internal/config"
	"techmart/internal/handler"
	"techmart/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// Read routes are public; create, update and delete require a valid
// admin bearer token.
func New(
	productHandler *handler.ProductHandler,
	authHandler *handler.AuthHandler,
	cfg *config.Config,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()
	startedAt := time.Now()

	// Liveness probe (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":         "OK",
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/admin/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/products", productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.GetByID).Methods(http.MethodGet)

	adminAPI := r.PathPrefix("/api").Subrouter()
	adminAPI.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, logger))
	adminAPI.HandleFunc("/products", productHandler.Create).Methods(http.MethodPost)
	adminAPI.HandleFunc("/products/{id}", productHandler.Update).Methods(http.MethodPut)
	adminAPI.HandleFunc("/products/{id}", productHandler.Delete).Methods(http.MethodDelete)

	// Unmatched routes answer JSON like everything else.
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "route not found"}`))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error": "method not allowed"}`))
	})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = r
	h = middleware.CORS(cfg.CORS.AllowedOrigins)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
