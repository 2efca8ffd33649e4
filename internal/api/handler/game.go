package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blockhive/internal/api/request"
	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/services/game"
	"github.com/mcoot/blockhive/internal/web/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	hub            *sse.Hub
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, hub *sse.Hub, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hub:            hub,
		logger:         logger,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(h.gameController.Snapshot()))
}

// DragStart handles POST /api/v1/game/drag
func (h *GameHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	var req request.DragRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.gameController.DragStart(model.PieceID(req.PieceID), req.PinnedOffset())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(snap))
}

// Hover handles POST /api/v1/game/hover. An empty body means the pointer
// left the board.
func (h *GameHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var req request.TargetRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	snap := h.gameController.DragOver(req.Resolve())
	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(snap))
}

// Drop handles POST /api/v1/game/drop
func (h *GameHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var req request.TargetRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	target := req.Resolve()
	if target == nil {
		WriteError(w, NewInvalidRequestError("coord or point is required"))
		return
	}

	outcome, snap := h.gameController.Drop(r.Context(), *target)
	response.JSON(w, http.StatusOK, response.DropResponse{
		Outcome: response.OutcomeFromModel(outcome),
		Game:    response.GameStateFromSnapshot(snap),
	})
}

// DragEnd handles DELETE /api/v1/game/drag
func (h *GameHandler) DragEnd(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(h.gameController.DragEnd()))
}

// Place handles POST /api/v1/game/place, a drag and drop in one request.
// A rejected drop releases the piece so the game is left as it was.
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	target := req.Resolve()
	if target == nil {
		WriteError(w, NewInvalidRequestError("coord or point is required"))
		return
	}

	if _, err := h.gameController.DragStart(model.PieceID(req.PieceID), req.PinnedOffset()); err != nil {
		WriteError(w, err)
		return
	}

	outcome, snap := h.gameController.Drop(r.Context(), *target)
	if !outcome.Accepted {
		snap = h.gameController.DragEnd()
	}

	response.JSON(w, http.StatusOK, response.DropResponse{
		Outcome: response.OutcomeFromModel(outcome),
		Game:    response.GameStateFromSnapshot(snap),
	})
}

// Restart handles POST /api/v1/game/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameController.Restart()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(snap))
}

// SetDifficulty handles PUT /api/v1/game/difficulty
func (h *GameHandler) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	var req request.DifficultyRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	level, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	snap, err := h.gameController.SetDifficulty(level)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(snap))
}

// Hints handles GET /api/v1/game/hints
func (h *GameHandler) Hints(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HintsFromMoves(h.gameController.Hints()))
}

// Events handles GET /api/v1/game/events. The opening state is read after
// the stream is registered with the hub.
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	err := sse.ServeSSE(w, r, h.hub, func() ([][]byte, error) {
		msg, err := sse.StateMessage(h.gameController.Snapshot())
		if err != nil {
			return nil, err
		}
		return [][]byte{msg}, nil
	})
	if err != nil {
		h.logger.Error("failed to encode initial state", slog.Any("error", err))
		WriteError(w, err)
	}
}
