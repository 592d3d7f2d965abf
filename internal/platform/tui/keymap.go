package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldTicks is used when no hold duration is configured.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "space", "w", "up", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HeldInput turns key events into held actions.
// Terminals report key presses (and auto-repeats) but never releases, so a
// movement action stays held for a number of ticks after its last key event.
// Pause and restart are one-shot: they are held for exactly one tick.
type HeldInput struct {
	holdTicks int
	held      map[core.Action]int // Ticks left per held action
	once      map[core.Action]bool
}

// NewHeldInput creates a tracker holding movement for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		once:      make(map[core.Action]bool),
	}
}

// Press records a key event for an action.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.held, core.ActionRight)
		h.held[a] = h.holdTicks
	case core.ActionRight:
		delete(h.held, core.ActionLeft)
		h.held[a] = h.holdTicks
	case core.ActionJump:
		h.held[a] = h.holdTicks
	case core.ActionNone:
	default:
		h.once[a] = true
	}
}

// Next returns the input frame for the coming tick and ages held actions.
func (h *HeldInput) Next() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	for a := range h.once {
		frame.Set(a)
		delete(h.once, a)
	}
	return frame
}

// Clear releases everything.
func (h *HeldInput) Clear() {
	clear(h.held)
	clear(h.once)
}
