package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

var (
	errBadJSON       = errors.New("httpapi: malformed request body")
	errUnknownPreset = errors.New("httpapi: unknown preset")
)

// statusCode maps an error to the HTTP status it should produce.
func statusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGameOver),
		errors.Is(err, ErrNotFinished),
		errors.Is(err, board.ErrAlreadyInitialized):
		return http.StatusConflict
	case errors.Is(err, ErrTooManyGames):
		return http.StatusServiceUnavailable
	case errors.Is(err, errBadJSON),
		errors.Is(err, errUnknownPreset),
		errors.Is(err, board.ErrInvalidDimensions),
		errors.Is(err, board.ErrInvalidMineCount),
		errors.Is(err, board.ErrIndexOutOfBounds):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
