package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blockhive/internal/api/handler"
	"github.com/mcoot/blockhive/internal/api/middleware"
	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/services/game"
	"github.com/mcoot/blockhive/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	Hub            *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Hub, cfg.Logger)
	boardHandler := handler.NewBoardHandler(cfg.GameController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/drag", gameHandler.DragStart).Methods(http.MethodPost)
	api.HandleFunc("/game/drag", gameHandler.DragEnd).Methods(http.MethodDelete)
	api.HandleFunc("/game/hover", gameHandler.Hover).Methods(http.MethodPost)
	api.HandleFunc("/game/drop", gameHandler.Drop).Methods(http.MethodPost)
	api.HandleFunc("/game/place", gameHandler.Place).Methods(http.MethodPost)
	api.HandleFunc("/game/restart", gameHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/game/difficulty", gameHandler.SetDifficulty).Methods(http.MethodPut)
	api.HandleFunc("/game/hints", gameHandler.Hints).Methods(http.MethodGet)
	api.HandleFunc("/game/events", gameHandler.Events).Methods(http.MethodGet)

	// Geometry and settings
	api.HandleFunc("/board/locate", boardHandler.Locate).Methods(http.MethodPost)
	api.HandleFunc("/difficulties", boardHandler.Difficulties).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
