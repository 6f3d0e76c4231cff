// Package api exposes the tracker over a JSON HTTP API.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jailbreak-0/iou-tracker/internal/ads"
	"github.com/jailbreak-0/iou-tracker/internal/auth"
	"github.com/jailbreak-0/iou-tracker/internal/contacts"
	"github.com/jailbreak-0/iou-tracker/internal/service"
)

// Server is the HTTP API server.
type Server struct {
	router     *mux.Router
	httpServer *http.Server

	records    *service.RecordService
	settings   *service.SettingsService
	categories *service.CategoryService
	gate       *ads.Gate
	contacts   contacts.Provider
	tokens     *auth.TokenManager
}

// NewServer wires the services into a router. addr is the listen address.
func NewServer(
	addr string,
	records *service.RecordService,
	settings *service.SettingsService,
	categories *service.CategoryService,
	gate *ads.Gate,
	contactsProvider contacts.Provider,
	tokens *auth.TokenManager,
) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		records:    records,
		settings:   settings,
		categories: categories,
		gate:       gate,
		contacts:   contactsProvider,
		tokens:     tokens,
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(recoveryMiddleware)
	s.router.Use(corsMiddleware)
	s.router.Use(loggingMiddleware)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/v1").Subrouter()

	// The unlock endpoints stay reachable while the app is locked.
	unlock := api.PathPrefix("/auth").Subrouter()
	unlock.HandleFunc("/status", s.handleAuthStatus).Methods(http.MethodGet)
	unlock.HandleFunc("/pin/verify", s.handleVerifyPin).Methods(http.MethodPost)
	unlock.HandleFunc("/biometric", s.handleBiometricUnlock).Methods(http.MethodPost)

	guarded := api.NewRoute().Subrouter()
	guarded.Use(s.requireUnlocked)

	guarded.HandleFunc("/records", s.handleListRecords).Methods(http.MethodGet)
	guarded.HandleFunc("/records", s.handleCreateRecord).Methods(http.MethodPost)
	guarded.HandleFunc("/records/{id}", s.handleGetRecord).Methods(http.MethodGet)
	guarded.HandleFunc("/records/{id}", s.handleUpdateRecord).Methods(http.MethodPut)
	guarded.HandleFunc("/records/{id}", s.handleDeleteRecord).Methods(http.MethodDelete)
	guarded.HandleFunc("/records/{id}/settle", s.handleSettleRecord).Methods(http.MethodPost)
	guarded.HandleFunc("/records/{id}/acknowledge", s.handleAcknowledgeRecord).Methods(http.MethodPost)

	guarded.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	guarded.HandleFunc("/reminders/upcoming", s.handleUpcoming).Methods(http.MethodGet)

	guarded.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	guarded.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	guarded.HandleFunc("/categories/{id}", s.handleUpdateCategory).Methods(http.MethodPut)
	guarded.HandleFunc("/categories/{id}", s.handleDeleteCategory).Methods(http.MethodDelete)

	guarded.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	guarded.HandleFunc("/settings", s.handleUpdateSettings).Methods(http.MethodPut)
	guarded.HandleFunc("/auth/pin", s.handleSetPin).Methods(http.MethodPost)
	guarded.HandleFunc("/auth/pin/disable", s.handleDisablePin).Methods(http.MethodPost)

	guarded.HandleFunc("/export", s.handleExport).Methods(http.MethodGet)

	guarded.HandleFunc("/ads/status", s.handleAdsStatus).Methods(http.MethodGet)
	guarded.HandleFunc("/ads/interstitial", s.handleInterstitial).Methods(http.MethodPost)
	guarded.HandleFunc("/purchase/unlock", s.handlePurchaseUnlock).Methods(http.MethodPost)

	guarded.HandleFunc("/contacts", s.handleContacts).Methods(http.MethodGet)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving. It blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	slog.Info("API server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
