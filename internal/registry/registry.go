// Package registry holds the game contract used by the platform and a global
// catalog of playable levels. Level packages register entries in init() or at
// startup, so the platform can list and start levels without hardcoded plans.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the held inputs.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Entry is one level in the catalog.
type Entry struct {
	ID    string
	Name  string
	Order int
	// Plan is the level's character grid, one line per row.
	Plan     string
	Metadata map[string]string
	// Source is the file the level came from, empty for built-in levels.
	Source string
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a level to the catalog.
// Panics if a level with the same ID is already registered.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// List returns all registered levels sorted by Order, then ID.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the level with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("registry: unknown level %q", id)
	}
	return e, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Reset empties the catalog.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	entries = make(map[string]Entry)
}
