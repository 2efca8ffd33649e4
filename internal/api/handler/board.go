package handler

import (
	"net/http"

	"github.com/mcoot/blockhive/internal/api/request"
	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/services/game"
)

// BoardHandler serves the static geometry endpoints
type BoardHandler struct {
	gameController game.ControllerInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(gameController game.ControllerInterface) *BoardHandler {
	return &BoardHandler{gameController: gameController}
}

// Locate handles POST /api/v1/board/locate
func (h *BoardHandler) Locate(w http.ResponseWriter, r *http.Request) {
	var req request.LocateRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	coord := model.PixelToAxial(model.Point{X: req.X, Y: req.Y}, req.HexSize)
	snap := h.gameController.Snapshot()

	response.JSON(w, http.StatusOK, response.Location{
		Coord:    coord,
		Key:      coord.Key(),
		InBounds: snap.Board.InBounds(coord),
	})
}

// Difficulties handles GET /api/v1/difficulties
func (h *BoardHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	result := make([]response.Difficulty, 0, len(model.Difficulties))
	for _, level := range model.Difficulties {
		settings, err := level.Settings()
		if err != nil {
			WriteError(w, err)
			return
		}
		result = append(result, response.DifficultyFromSettings(settings))
	}

	response.JSON(w, http.StatusOK, result)
}
