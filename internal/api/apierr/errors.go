package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/blockhive/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidCoordinate = "INVALID_COORDINATE"
	CodeUnknownDifficulty = "UNKNOWN_DIFFICULTY"
	CodePieceNotInTray    = "PIECE_NOT_IN_TRAY"
	CodeInvalidOffset     = "INVALID_OFFSET"
	CodeInvalidPlacement  = "INVALID_PLACEMENT"
	CodeGameOver          = "GAME_OVER"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusFor returns the HTTP status an error maps to
func StatusFor(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidCoordKey):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCoordinate, "Invalid coordinate"}}
	case errors.Is(err, model.ErrUnknownDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownDifficulty, "Difficulty must be easy, medium or hard"}}
	case errors.Is(err, model.ErrPieceNotInTray):
		return &httpError{http.StatusNotFound, APIError{CodePieceNotInTray, "Piece is not in the tray"}}
	case errors.Is(err, model.ErrInvalidOffset):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOffset, "Offset is not a cell of the piece"}}
	case errors.Is(err, model.ErrInvalidPlacement):
		return &httpError{http.StatusConflict, APIError{CodeInvalidPlacement, "Piece does not fit there"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, model.ErrKeyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
