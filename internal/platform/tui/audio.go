package tui

import "io"

// Bell plays the collision cue by ringing the terminal bell.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w (typically os.Stderr, so the cue does
// not interleave with the rendered frame on stdout).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayCue rings the bell. Write errors are ignored; a missing cue never
// affects the game.
func (b *Bell) PlayCue() {
	//nolint:errcheck // Best-effort, fire-and-forget
	io.WriteString(b.w, "\a")
}
