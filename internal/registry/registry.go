// Package registry keeps the set of playable games. Game packages register
// a factory per variant in init(), so the CLI, menu and SSH server can list
// and create games without importing them directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic and
// never touch the terminal; the platform maps keys to actions, runs the
// tick loop and displays the rendered screen.
type Game interface {
	// ID returns a unique identifier (e.g., "mines_expert").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick, applying the frame's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string // empty unless the game has a Description method
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a game factory. Games are listed in registration order.
// It panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(interface{ Description() string }); ok {
		info.Description = d.Description()
	}

	byID[id] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Lookup returns the info of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Title returns the display title of a registered game, or the ID itself
// if it is unknown.
func Title(id string) string {
	if info, ok := Lookup(id); ok {
		return info.Title
	}
	return id
}
