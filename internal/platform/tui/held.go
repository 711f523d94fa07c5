package tui

import (
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// HeldKeys approximates "key is down" on terminals, which report presses and
// auto-repeats but never releases.
//
// A first press stays held for the repeat delay, long enough to bridge the gap
// before the terminal's auto-repeat kicks in. Once a repeat has arrived the
// key only stays held for the shorter hold window after each repeat, so
// letting go stops the paddle quickly.
type HeldKeys struct {
	delay  time.Duration // Window after a first press
	window time.Duration // Window after an auto-repeat
	last   map[core.Action]keyPress
}

// keyPress is the most recent press of one action.
type keyPress struct {
	at        time.Time
	repeating bool
}

// NewHeldKeys creates a tracker. delay covers the first press, window every
// auto-repeat after it. A delay shorter than window is raised to window.
func NewHeldKeys(delay, window time.Duration) *HeldKeys {
	return &HeldKeys{
		delay:  max(delay, window),
		window: window,
		last:   make(map[core.Action]keyPress),
	}
}

// Press records a press or auto-repeat of a movement action at now. A press
// arriving while the action is still held counts as an auto-repeat.
// Pressing one direction releases the opposite one immediately.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		delete(h.last, core.ActionDown)
	case core.ActionDown:
		delete(h.last, core.ActionUp)
	}
	h.last[a] = keyPress{at: now, repeating: h.IsHeld(a, now)}
}

// IsHeld reports whether a is considered held at now.
func (h *HeldKeys) IsHeld(a core.Action, now time.Time) bool {
	p, ok := h.last[a]
	if !ok {
		return false
	}
	limit := h.delay
	if p.repeating {
		limit = h.window
	}
	return now.Sub(p.at) <= limit
}

// Fill marks every held action on the frame and forgets expired ones.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.IsHeld(a, now) {
			frame.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	clear(h.last)
}
