package web

import (
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestLayoutFitsBoardAndPad(t *testing.T) {
	l := NewLayout(core.NewGrid(400, 20))

	if l.Board.W != 400 || l.Board.H != 400 || l.Width != 400 {
		t.Errorf("board = %+v, width = %d", l.Board, l.Width)
	}
	for _, b := range l.Buttons {
		if b.Rect.X < 0 || b.Rect.Right() > l.Width || b.Rect.Bottom() > l.Height {
			t.Errorf("button %s at %+v lies outside the %dx%d canvas", b.Label, b.Rect, l.Width, l.Height)
		}
		if b.Rect.Y < l.Board.Bottom() {
			t.Errorf("button %s overlaps the board", b.Label)
		}
	}

	for i, a := range l.Buttons {
		for _, b := range l.Buttons[i+1:] {
			if overlaps(a.Rect, b.Rect) {
				t.Errorf("buttons %s and %s overlap", a.Label, b.Label)
			}
		}
	}
}

func overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

func TestLayoutHit(t *testing.T) {
	l := NewLayout(core.NewGrid(400, 20))

	for _, b := range l.Buttons {
		t.Run(b.Label, func(t *testing.T) {
			cx, cy := b.Rect.Center()
			got, ok := l.Hit(cx, cy, true)
			if !ok || got != b.Action {
				t.Errorf("Hit(centre) = (%v, %v), expected %v", got, ok, b.Action)
			}
		})
	}

	for _, b := range l.Buttons {
		if b.Action != core.ActionRestart {
			continue
		}
		cx, cy := b.Rect.Center()
		if _, ok := l.Hit(cx, cy, false); ok {
			t.Error("hidden restart button should not respond")
		}
	}

	if _, ok := l.Hit(200, 200, true); ok {
		t.Error("the board is not a button")
	}
}

func TestCellRect(t *testing.T) {
	grid := core.NewGrid(400, 20)
	l := NewLayout(grid)

	r := l.CellRect(grid, core.Cell{X: 2, Y: 3})
	want := core.NewRect(40, hudHeight+60, 18, 18)
	if r != want {
		t.Errorf("CellRect = %+v, expected %+v", r, want)
	}
}
