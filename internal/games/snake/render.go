package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Terminal layout. Each board cell is two characters wide so the board
// looks square in a typical terminal font.
const (
	hudHeight  = 2
	cellWidth  = 2
	bodyGlyph  = '█'
	headGlyph  = '▓'
	foodGlyphL = '◖'
	foodGlyphR = '◗'
)

// BoardSize returns the terminal characters needed to draw the board,
// including the border and the HUD.
func (g *Game) BoardSize() (w, h int) {
	n := g.settings.Grid.Size
	return n*cellWidth + 2, n + 2 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	needW, needH := g.BoardSize()
	if dst.Width() < needW || dst.Height() < needH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	originX := (dst.Width() - needW) / 2
	originY := hudHeight
	dst.DrawBox(core.NewRect(originX, originY, needW, needH-hudHeight), core.ColorBorder)

	// Cell (0,0) sits just inside the border.
	ox, oy := originX+1, originY+1
	g.renderFood(dst, ox, oy)
	g.renderSnake(dst, ox, oy)

	switch {
	case g.session.Phase == PhaseGameOver:
		g.renderOverlay(dst, GameOverMessage, RestartHint)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d", g.title, g.session.Score)
	dst.DrawText(0, 0, hud, core.ColorHUD)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorBorder)
	}
}

func (g *Game) renderFood(dst *core.Screen, ox, oy int) {
	f := g.session.Food
	if !g.settings.Grid.Contains(f) {
		return
	}
	x := ox + f.X*cellWidth
	dst.SetColored(x, oy+f.Y, foodGlyphL, core.ColorFood)
	dst.SetColored(x+1, oy+f.Y, foodGlyphR, core.ColorFood)
}

// renderSnake draws the body, then the head on top of it.
func (g *Game) renderSnake(dst *core.Screen, ox, oy int) {
	cells := g.session.Body.Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if !g.settings.Grid.Contains(c) {
			continue
		}
		glyph, color := bodyGlyph, core.ColorBody
		if i == 0 {
			glyph, color = headGlyph, core.ColorHead
		}
		x := ox + c.X*cellWidth
		dst.SetColored(x, oy+c.Y, glyph, color)
		dst.SetColored(x+1, oy+c.Y, glyph, color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorHUD)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorHUD)
}
