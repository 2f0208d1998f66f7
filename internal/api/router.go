package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/fastlane/internal/api/handler"
	"github.com/mcoot/fastlane/internal/api/middleware"
	"github.com/mcoot/fastlane/internal/api/response"
	"github.com/mcoot/fastlane/internal/api/sse"
	"github.com/mcoot/fastlane/internal/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Host   *session.Host
	Hub    *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.Host)
	eventsHandler := handler.NewEventsHandler(cfg.Hub)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/game/restart", gameHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/game/actions", gameHandler.Act).Methods(http.MethodPost)
	api.HandleFunc("/game/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)
	api.HandleFunc("/game/summary/ack", gameHandler.AcknowledgeSummary).Methods(http.MethodPost)
	api.HandleFunc("/game/events", eventsHandler.Stream).Methods(http.MethodGet)
	api.HandleFunc("/catalog", gameHandler.Catalog).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
