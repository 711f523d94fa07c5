package tennis

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// Palette holds the colors used to draw the board.
type Palette struct {
	LeftPaddle  core.Color
	RightPaddle core.Color
	Ball        core.Color
	Text        core.Color
	Net         core.Color
	Logo        core.Color
}

// DefaultPalette returns the blue-versus-red palette.
func DefaultPalette() Palette {
	return Palette{
		LeftPaddle:  core.ColorBlue,
		RightPaddle: core.ColorRed,
		Ball:        core.ColorBrightWhite,
		Text:        core.ColorWhite,
		Net:         core.ColorGray,
		Logo:        core.ColorBrightGreen,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Snapshot().Draw(dst, g.palette)
}

// Draw renders the snapshot. Row 0 holds the scores and the last row the
// elapsed time (plus the ball speed during a rally); the board is scaled into
// the rows in between. Paddles and balls
// are only drawn during a rally, the logo and message only while idle.
func (s Snapshot) Draw(dst *core.Screen, pal Palette) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < 3 {
		return
	}

	v := viewport{w: dst.Width(), h: dst.Height() - 2}
	centerX := dst.Width() / 2

	if s.State == StatePlaying {
		for y := 1; y <= v.h; y += 2 {
			dst.SetColored(centerX, y, NetChar, pal.Net)
		}
		drawPaddle(dst, v, s.LeftPaddle, pal.LeftPaddle)
		drawPaddle(dst, v, s.RightPaddle, pal.RightPaddle)
		for _, b := range s.Balls {
			x, y := v.cell(b)
			dst.SetColored(x, y, BallChar, pal.Ball)
		}
		dst.DrawTextColored(1, dst.Height()-1, fmt.Sprintf("Speed: %.0f", s.Speed), pal.Text)
	} else {
		drawIdle(dst, s.Message, pal)
	}

	dst.DrawTextColored(1, 0, "BLUE", pal.LeftPaddle)
	dst.DrawTextColored(dst.Width()-4, 0, "RED", pal.RightPaddle)
	dst.DrawTextColored(centerX-5, 0, fmt.Sprintf("%d", s.LeftScore), pal.Text)
	dst.DrawTextColored(centerX+4, 0, fmt.Sprintf("%d", s.RightScore), pal.Text)

	dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf("Time: %ds", s.ElapsedSeconds), pal.Text)
}

// viewport maps board units onto the screen rows between the score line and
// the time line.
type viewport struct {
	w, h int
}

// col converts a board x to a screen column.
func (v viewport) col(x float64) int {
	return core.Clamp(int(x/BoardWidth*float64(v.w)), 0, v.w-1)
}

// row converts a board y to a screen row.
func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(y/BoardHeight*float64(v.h)), 0, v.h-1)
}

// cell converts a board point to a screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// drawPaddle fills the cells covered by a paddle, at least one cell wide.
func drawPaddle(dst *core.Screen, v viewport, box core.Box, c core.Color) {
	const eps = 1e-6
	x0, x1 := v.col(box.Left()), v.col(box.Right()-eps)
	y0, y1 := v.row(box.Top()), v.row(box.Bottom()-eps)
	dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), PaddleChar, c)
}

// drawIdle draws the logo and the multi-line message, centered.
func drawIdle(dst *core.Screen, message string, pal Palette) {
	lines := strings.Split(message, "\n")

	logoW := 0
	for _, l := range logo {
		logoW = max(logoW, len(l))
	}

	y := 2
	if dst.Height() >= len(logo)+len(lines)+6 && dst.Width() >= logoW {
		x := (dst.Width() - logoW) / 2
		for i, l := range logo {
			dst.DrawTextColored(x, y+i, l, pal.Logo)
		}
		y += len(logo) + 1
	}

	for i, l := range lines {
		dst.DrawTextCentered(y+i, l, pal.Text)
	}
}
