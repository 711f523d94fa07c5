package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "BLUE", core.ColorBlue)
	s.DrawTextColored(4, 0, "10", core.ColorWhite)
	s.DrawText(1, 1, "ok")

	out := RenderScreen(s)

	// Styles may add escape sequences, but never change the text
	for _, want := range []string{"BLUE", "10", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen is missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, expected 1", got)
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen() = %q, expected empty", out)
	}
}

func TestBellPlaysOncePerCue(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	bell.PlayCue()
	bell.PlayCue()

	if buf.String() != "\a\a" {
		t.Errorf("bell wrote %q, expected two BEL characters", buf.String())
	}
}
