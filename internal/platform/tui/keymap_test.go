package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = %v, %v; expected %v, %v", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHeldInputHoldsMovement(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(core.ActionRight)

	for i := range 3 {
		if f := h.Next(); !f.Has(core.ActionRight) {
			t.Fatalf("tick %d: right released too early", i)
		}
	}
	if f := h.Next(); f.Has(core.ActionRight) {
		t.Error("right still held after hold ticks")
	}
}

func TestHeldInputRepeatExtends(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(core.ActionLeft)
	h.Next()
	h.Press(core.ActionLeft) // Key repeat
	h.Next()
	if f := h.Next(); !f.Has(core.ActionLeft) {
		t.Error("repeat should extend the hold")
	}
}

func TestHeldInputOppositeDirection(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)
	h.Press(core.ActionRight)

	f := h.Next()
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionJump) {
		t.Errorf("frame = %v, expected right and jump", f.Actions)
	}
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	if f := h.Next(); !f.Has(core.ActionPause) || len(f.Actions) != 1 {
		t.Errorf("frame = %v, expected only pause", f.Actions)
	}
	if f := h.Next(); f.Has(core.ActionPause) {
		t.Error("pause should last a single tick")
	}
}

func TestHeldInputClear(t *testing.T) {
	h := NewHeldInput(0)
	if h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected default %d", h.holdTicks, DefaultHoldTicks)
	}

	h.Press(core.ActionRight)
	h.Press(core.ActionRestart)
	h.Clear()
	if f := h.Next(); len(f.Actions) != 0 {
		t.Errorf("frame = %v, expected empty after Clear", f.Actions)
	}
}
