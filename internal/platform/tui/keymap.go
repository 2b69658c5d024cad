package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cube/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "a", "left", "h":
		return core.ActionLeft
	case "d", "right", "l":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
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
	case "tab":
		return MenuActionScoreboard
	}

	switch km.MapKey(msg) {
	case core.ActionQuit:
		return MenuActionQuit
	case core.ActionUp:
		return MenuActionUp
	case core.ActionDown:
		return MenuActionDown
	case core.ActionConfirm:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}

// HeldKeys turns key presses into held directions. Terminals only report
// presses and auto-repeats, never releases, so a direction counts as held
// until no press for it has arrived for the hold window.
type HeldKeys struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker for the given hold window and tick rate.
// The window always covers at least one tick.
func NewHeldKeys(hold time.Duration, tickRate int) *HeldKeys {
	tick := time.Second / time.Duration(tickRate)
	ticks := int((hold + tick - 1) / tick)
	if ticks < 1 {
		ticks = 1
	}
	return &HeldKeys{
		holdTicks: ticks,
		remaining: make(map[core.Action]int),
	}
}

// Press marks a direction as held. Pressing a direction releases its
// opposite so a change of heading takes effect on the next tick.
func (h *HeldKeys) Press(a core.Action) {
	if !a.IsDirection() {
		return
	}
	delete(h.remaining, opposite(a))
	h.remaining[a] = h.holdTicks
}

// Frame returns the directions held for this tick and ages the window.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
