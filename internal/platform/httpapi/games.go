// Package httpapi hosts minesweeper boards behind a JSON HTTP API. Any
// number of requests may arrive concurrently; each hosted board has its
// own mutex so placement and reveals on one board are serialized while
// different boards proceed in parallel.
package httpapi

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper/board"
)

var (
	ErrGameNotFound = errors.New("httpapi: game not found")
	ErrGameOver     = errors.New("httpapi: game is over")
	ErrTooManyGames = errors.New("httpapi: too many games")
	ErrNotFinished  = errors.New("httpapi: game is still running")
)

// Game state names used in responses.
const (
	StateReady   = "ready"
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// Game is one hosted board and its play state.
type Game struct {
	mu       sync.Mutex
	id       string
	preset   config.Preset
	board    *board.Board
	exploded int
	created  time.Time
	started  time.Time
	finished time.Time
}

// Games is the set of hosted boards.
type Games struct {
	mu    sync.RWMutex
	games map[string]*Game
	limit int // 0 means unlimited
}

// NewGames creates an empty set holding at most limit boards.
func NewGames(limit int) *Games {
	return &Games{
		games: make(map[string]*Game),
		limit: limit,
	}
}

// Create starts a board for the preset. A zero seed picks one from the clock.
func (g *Games) Create(p config.Preset, seed int64) (*Game, error) {
	if err := config.ValidatePreset(p); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, err := board.New(p.Height, p.Width, board.WithRandomSource(rand.New(rand.NewSource(seed))))
	if err != nil {
		return nil, err
	}

	hg := &Game{
		id:       uuid.NewString(),
		preset:   p,
		board:    b,
		exploded: -1,
		created:  time.Now(),
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.limit > 0 && len(g.games) >= g.limit {
		return nil, ErrTooManyGames
	}
	g.games[hg.id] = hg
	return hg, nil
}

// Get returns the board with the given ID.
func (g *Games) Get(id string) (*Game, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hg, ok := g.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return hg, nil
}

// Delete removes a board.
func (g *Games) Delete(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(g.games, id)
	return nil
}

// List returns views of every board, oldest first.
func (g *Games) List() []GameView {
	g.mu.RLock()
	hosted := make([]*Game, 0, len(g.games))
	for _, hg := range g.games {
		hosted = append(hosted, hg)
	}
	g.mu.RUnlock()

	sort.Slice(hosted, func(i, j int) bool {
		return hosted[i].created.Before(hosted[j].created)
	})

	views := make([]GameView, len(hosted))
	for i, hg := range hosted {
		views[i] = hg.View()
	}
	return views
}

// Len returns the number of hosted boards.
func (g *Games) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.games)
}

// Uncover reveals (row, col). The first reveal places the mines with that
// tile kept safe, and zero tiles flood when flood is set.
func (hg *Game) Uncover(row, col int, flood bool) (UncoverResult, error) {
	hg.mu.Lock()
	defer hg.mu.Unlock()

	if hg.stateLocked() == StateWon || hg.stateLocked() == StateLost {
		return UncoverResult{}, ErrGameOver
	}

	idx, err := hg.board.Index(row, col)
	if err != nil {
		return UncoverResult{}, err
	}

	if !hg.board.Initialized() {
		if err := hg.board.Initialize(idx, hg.preset.Mines); err != nil {
			return UncoverResult{}, err
		}
		hg.started = time.Now()
	}

	tile, err := hg.board.Tile(idx)
	if err != nil {
		return UncoverResult{}, err
	}
	value, err := hg.board.Uncover(idx)
	if err != nil {
		return UncoverResult{}, err
	}

	result := UncoverResult{Value: value, Revealed: []int{}}
	if !tile.IsCovered {
		// Already open: nothing new to report.
		result.Game = hg.viewLocked()
		return result, nil
	}
	result.Revealed = append(result.Revealed, idx)
	switch {
	case value.Mine:
		hg.exploded = idx
	case value.Count == 0 && flood:
		more, err := hg.board.FloodReveal(idx)
		if err != nil {
			return UncoverResult{}, err
		}
		result.Revealed = append(result.Revealed, more...)
	}

	state := hg.stateLocked()
	if state == StateWon || state == StateLost {
		hg.finished = time.Now()
	}

	result.Game = hg.viewLocked()
	return result, nil
}

// Analysis returns the board's openings and 3BV once the game is over.
func (hg *Game) Analysis() (Analysis, error) {
	hg.mu.Lock()
	defer hg.mu.Unlock()

	state := hg.stateLocked()
	if state != StateWon && state != StateLost {
		return Analysis{}, ErrNotFinished
	}
	return Analysis{
		Openings: board.Openings(hg.board),
		BBBV:     board.BBBV(hg.board),
		Mines:    hg.board.Mines(),
	}, nil
}

// View returns a snapshot of the game.
func (hg *Game) View() GameView {
	hg.mu.Lock()
	defer hg.mu.Unlock()
	return hg.viewLocked()
}

// ID returns the game's identifier.
func (hg *Game) ID() string {
	return hg.id
}

// durationLocked is whole seconds from the first reveal to the end, or to
// now while playing.
func (hg *Game) durationLocked() int {
	if hg.started.IsZero() {
		return 0
	}
	end := hg.finished
	if end.IsZero() {
		end = time.Now()
	}
	return int(end.Sub(hg.started) / time.Second)
}

func (hg *Game) stateLocked() string {
	switch {
	case hg.exploded >= 0:
		return StateLost
	case !hg.board.Initialized():
		return StateReady
	case hg.board.IsWon():
		return StateWon
	}
	return StatePlaying
}

func (hg *Game) viewLocked() GameView {
	state := hg.stateLocked()
	lost := state == StateLost

	rows := make([]string, hg.preset.Height)
	line := make([]byte, hg.preset.Width)
	for r := range hg.preset.Height {
		for c := range hg.preset.Width {
			idx := r*hg.preset.Width + c
			t, _ := hg.board.Tile(idx)
			switch {
			case idx == hg.exploded:
				line[c] = '#'
			case t.IsMine && (lost || !t.IsCovered):
				line[c] = '*'
			case t.IsCovered:
				line[c] = '.'
			default:
				line[c] = byte('0' + t.AdjacentCount)
			}
		}
		rows[r] = string(line)
	}

	revealed := 0
	if hg.board.Initialized() {
		revealed = hg.board.Len() - hg.board.MineCount() - hg.board.CoveredSafe()
	}

	return GameView{
		ID:       hg.id,
		Preset:   hg.preset.Name,
		Height:   hg.preset.Height,
		Width:    hg.preset.Width,
		Mines:    hg.preset.Mines,
		State:    state,
		Revealed: revealed,
		Elapsed:  hg.durationLocked(),
		Rows:     rows,
	}
}
