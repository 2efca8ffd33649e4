package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blockhive/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrInvalidCoordKey, http.StatusBadRequest, CodeInvalidCoordinate},
		{fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, "x"), http.StatusBadRequest, CodeUnknownDifficulty},
		{model.ErrPieceNotInTray, http.StatusNotFound, CodePieceNotInTray},
		{model.ErrInvalidOffset, http.StatusBadRequest, CodeInvalidOffset},
		{model.ErrInvalidPlacement, http.StatusConflict, CodeInvalidPlacement},
		{model.ErrGameOver, http.StatusConflict, CodeGameOver},
		{NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, StatusFor(tt.err))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}
