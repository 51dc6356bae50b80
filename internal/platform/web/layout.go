package web

import "github.com/vovakirdan/snake-arcade/internal/core"

// Canvas layout: a HUD strip, the board, then the touch control pad.
const (
	hudHeight  = 24
	padMargin  = 12
	buttonSize = 56
	buttonGap  = 8
	sideWidth  = 88
)

// Button is an on-screen control.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

// Layout positions the board and the control pad on the canvas.
type Layout struct {
	Width   int
	Height  int
	Board   core.Rect
	Buttons []Button
}

// NewLayout lays out a canvas for the grid. The direction pad sits centred
// under the board with Restart on its left and the sound toggle on its right.
func NewLayout(grid core.Grid) Layout {
	side := grid.CanvasPx()
	board := core.NewRect(0, hudHeight, side, side)

	top := board.Bottom() + padMargin
	cx := side / 2
	left := cx - buttonSize/2 - buttonGap - buttonSize
	mid := cx - buttonSize/2
	right := cx + buttonSize/2 + buttonGap
	row2 := top + buttonSize + buttonGap

	buttons := []Button{
		{Label: "Up", Action: core.ActionUp, Rect: core.NewRect(mid, top, buttonSize, buttonSize)},
		{Label: "Left", Action: core.ActionLeft, Rect: core.NewRect(left, row2, buttonSize, buttonSize)},
		{Label: "Down", Action: core.ActionDown, Rect: core.NewRect(mid, row2, buttonSize, buttonSize)},
		{Label: "Right", Action: core.ActionRight, Rect: core.NewRect(right, row2, buttonSize, buttonSize)},
		{Label: "Restart", Action: core.ActionRestart, Rect: core.NewRect(padMargin, top, sideWidth, buttonSize)},
		{Label: "Sound", Action: core.ActionMute, Rect: core.NewRect(side-padMargin-sideWidth, top, sideWidth, buttonSize)},
	}

	return Layout{
		Width:   side,
		Height:  row2 + buttonSize + padMargin,
		Board:   board,
		Buttons: buttons,
	}
}

// Hit returns the action of the button under (x, y). The restart button
// only responds while it is shown.
func (l Layout) Hit(x, y int, showRestart bool) (core.Action, bool) {
	for _, b := range l.Buttons {
		if b.Action == core.ActionRestart && !showRestart {
			continue
		}
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	return core.ActionNone, false
}

// CellRect returns the canvas rectangle for a board cell.
func (l Layout) CellRect(grid core.Grid, c core.Cell) core.Rect {
	r := grid.PixelRect(c)
	r.X += l.Board.X
	r.Y += l.Board.Y
	return r
}
