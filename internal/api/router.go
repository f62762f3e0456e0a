package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/draftelite/onboarding-go/internal/api/handler"
	"github.com/draftelite/onboarding-go/internal/api/middleware"
	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/services/flow"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Flows  *flow.Manager
	Auth   backend.AuthClient
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Flows, cfg.Auth)
	flowHandler := handler.NewFlowHandler(cfg.Flows)
	profileHandler := handler.NewProfileHandler(cfg.Flows)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	deviceMiddleware := middleware.Device()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(deviceMiddleware)

	// Account and session routes
	api.HandleFunc("/auth/signup/player", authHandler.SignupPlayer).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup/parent", authHandler.SignupParent).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/resend", authHandler.ResendConfirmation).Methods(http.MethodPost)

	// Screen resolution and wizard navigation
	api.HandleFunc("/flow", flowHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/flow/onboarding/complete", flowHandler.CompleteOnboarding).Methods(http.MethodPost)
	api.HandleFunc("/flow/signup", flowHandler.RequestSignup).Methods(http.MethodPost)
	api.HandleFunc("/flow/account-type", flowHandler.ChooseAccountType).Methods(http.MethodPost)
	api.HandleFunc("/flow/return-to-login", flowHandler.ReturnToLogin).Methods(http.MethodPost)

	// Profile routes
	api.HandleFunc("/profiles/player", profileHandler.SubmitPlayer).Methods(http.MethodPost)
	api.HandleFunc("/profiles/child", profileHandler.SubmitChild).Methods(http.MethodPost)
	api.HandleFunc("/profiles/me", profileHandler.GetMe).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
