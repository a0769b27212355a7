package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"myfragance/internal/service"
	"myfragance/internal/transport/rest/handler"
	"myfragance/internal/transport/rest/middleware"
	"myfragance/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	CatalogService *service.CatalogService
	RecService     *service.RecommendationService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	recHandler := handler.NewRecommendationHandler(c.RecService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/catalog/perfumes", catalogHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/perfumes/{key}", catalogHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/recommendations/popular", recHandler.Popular).Methods("GET", "OPTIONS")

	// WebSocket route (public with session token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/catalog/invalidate", catalogHandler.Invalidate).Methods("POST", "OPTIONS")

	// Session routes (require session auth)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/{id}/question/current", sessionHandler.Current).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/answers", sessionHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/advance", sessionHandler.Advance).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/retreat", sessionHandler.Retreat).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/responses", sessionHandler.Responses).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/profile", sessionHandler.Profile).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/recommendations", recHandler.GetForSession).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/recommendations/{key}/hide", recHandler.Hide).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
