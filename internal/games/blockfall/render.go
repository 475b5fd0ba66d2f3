package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

const (
	cellWidth  = 2 // terminal columns per board cell
	panelWidth = 14
	panelGap   = 2
)

var terminalColors = map[string]core.Color{
	"default": core.ColorDefault,
	"magenta": core.ColorMagenta,
	"red":     core.ColorRed,
	"yellow":  core.ColorYellow,
	"green":   core.ColorGreen,
	"orange":  core.ColorOrange,
	"cyan":    core.ColorCyan,
	"blue":    core.ColorBlue,
	"white":   core.ColorWhite,
	"gray":    core.ColorGray,
}

// buildPalette resolves configured color names. Unknown or missing entries
// fall back to the default palette.
func buildPalette(names map[string]string) map[engine.Color]core.Color {
	pal := make(map[engine.Color]core.Color, len(engine.AllColors))
	for _, c := range engine.AllColors {
		pal[c] = defaultTerminalColor(c)
		if tc, ok := terminalColors[strings.ToLower(names[c.String()])]; ok {
			pal[c] = tc
		}
	}
	return pal
}

func defaultTerminalColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorPink:
		return core.ColorMagenta
	case engine.ColorRed:
		return core.ColorRed
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorLightBlue:
		return core.ColorCyan
	case engine.ColorDarkBlue:
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}

// layoutSize returns the screen area the board and side panel need.
func (g *Game) layoutSize() (w, h int) {
	return g.eng.Width()*cellWidth + 2 + panelGap + panelWidth, g.eng.Height() + 2
}

// Render draws the board, the side panel and any overlay. Each call counts
// one frame of the row-clear animation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	w, h := g.layoutSize()
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", w, h), core.ColorGray)
		return
	}

	area := core.CenteredIn(dst.Width(), dst.Height(), w, h)
	board := core.NewRect(area.X, area.Y, g.eng.Width()*cellWidth+2, h)
	g.renderBoard(dst, board)
	g.renderPanel(dst, core.NewRect(board.Right()+panelGap, area.Y, panelWidth, h))

	if g.notice != "" && area.Bottom() < dst.Height() {
		dst.DrawTextCentered(area.Bottom(), g.notice, core.ColorGray)
	}

	switch g.phase.Current() {
	case phaseOver:
		g.renderOverlay(dst, board, "GAME OVER", "R to restart")
	case phasePaused:
		g.renderOverlay(dst, board, "PAUSED", "P to resume")
	}

	g.eng.AdvanceClearAnimation()
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	for y := 0; y < g.eng.Height(); y++ {
		for x := 0; x < g.eng.Width(); x++ {
			dst.SetColored(inner.X+x*cellWidth, inner.Y+y, '·', core.ColorGray)
		}
	}

	for _, b := range g.eng.Blocks() {
		g.drawCell(dst, inner, b.X, b.Y, '█', g.palette[b.Color])
	}

	anim := g.eng.ClearAnimation()
	if !anim.Active() {
		return
	}
	for _, row := range anim.Rows {
		if row < 0 || row >= g.eng.Height() {
			continue
		}
		for x := 0; x < g.eng.Width(); x++ {
			if _, occupied := g.eng.Occupant(x, row); !occupied {
				g.drawCell(dst, inner, x, row, '░', core.ColorWhite)
			}
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, inner core.Rect, x, y int, r rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(inner.X+x*cellWidth+i, inner.Y+y, r, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	y := r.Y
	dst.DrawTextColored(r.X, y, "NEXT", core.ColorWhite)
	y += 2

	for _, p := range g.eng.NextPieces() {
		g.drawPreview(dst, r.X, y, p)
		y += 3
	}
	y++

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.eng.Score()},
		{"LEVEL", g.eng.Level()},
		{"LINES", g.eng.Lines()},
	}
	for _, s := range stats {
		if y+1 >= r.Bottom() {
			break
		}
		dst.DrawTextColored(r.X, y, s.label, core.ColorGray)
		dst.DrawText(r.X, y+1, fmt.Sprintf("%d", s.value))
		y += 3
	}
}

// drawPreview draws a queued piece in its spawn orientation with its top-left
// at (x, y).
func (g *Game) drawPreview(dst *core.Screen, x, y int, p engine.Piece) {
	minX := p.Parts[0].X
	for _, part := range p.Parts {
		minX = min(minX, part.X)
	}
	c := g.palette[p.Color]
	for _, cell := range p.Cells() {
		for i := 0; i < cellWidth; i++ {
			dst.SetColored(x+(cell.X-minX)*cellWidth+i, y+cell.Y, '█', c)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, title, hint string) {
	boxW := min(max(len(title), len(hint))+4, board.W)
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+board.H/2-2, boxW, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-len(hint))/2, box.Y+3, hint, core.ColorGray)
}
