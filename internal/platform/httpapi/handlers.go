package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const maxBodyBytes = 1 << 16

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"games":  s.games.Len(),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	preset, err := s.resolvePreset(req)
	if err != nil {
		writeError(w, err)
		return
	}

	hg, err := s.games.Create(preset, req.Seed)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("game created", "id", hg.ID(), "preset", preset.Name,
		"size", fmt.Sprintf("%dx%d", preset.Width, preset.Height), "mines", preset.Mines)
	w.Header().Set("Location", "/v1/games/"+hg.ID())
	writeJSON(w, http.StatusCreated, hg.View())
}

func (s *Server) resolvePreset(req CreateRequest) (config.Preset, error) {
	if req.Preset != "" {
		p, ok := s.settings.Preset(req.Preset)
		if !ok {
			return config.Preset{}, fmt.Errorf("%w: %q", errUnknownPreset, req.Preset)
		}
		return p, nil
	}
	if req.Height == 0 && req.Width == 0 && req.Mines == 0 {
		return s.settings.Presets[0], nil
	}
	return config.Preset{
		Name:   "custom",
		Height: req.Height,
		Width:  req.Width,
		Mines:  req.Mines,
	}, nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.games.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	hg, err := s.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hg.View())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.games.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUncover(w http.ResponseWriter, r *http.Request) {
	hg, err := s.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req UncoverRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := hg.Uncover(req.Row, req.Col, s.settings.FloodReveal)
	if err != nil {
		writeError(w, err)
		return
	}

	if res.Game.State == StateWon || res.Game.State == StateLost {
		s.record(hg, res.Game)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	hg, err := s.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	a, err := hg.Analysis()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// record stores a finished game. Only the request that ended the game gets
// here, because later reveals fail with ErrGameOver.
func (s *Server) record(hg *Game, v GameView) {
	s.logger.Info("game finished", "id", v.ID, "state", v.State, "elapsed", v.Elapsed)
	if s.store == nil {
		return
	}

	won := v.State == StateWon
	score := v.Revealed
	if won && s.settings.Scoring.TimeLimitSecs > 0 {
		score += max(0, s.settings.Scoring.TimeLimitSecs-v.Elapsed)
	}

	gameID := "mines_custom"
	if v.Preset != "custom" {
		gameID = "mines_" + v.Preset
	}

	_, err := s.store.SaveResult(storage.Result{
		GameID:    gameID,
		Won:       won,
		Score:     score,
		Duration:  v.Elapsed,
		Revealed:  v.Revealed,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("could not save result", "id", v.ID, "error", err)
	}
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}
