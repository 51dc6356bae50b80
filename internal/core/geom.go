// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

// Cell is a grid coordinate (column, row).
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in the given heading.
func (c Cell) Add(h Heading) Cell {
	return Cell{X: c.X + h.DX, Y: c.Y + h.DY}
}

// Heading is a unit movement vector along one axis.
type Heading struct {
	DX, DY int
}

// The four valid headings.
var (
	HeadingUp    = Heading{DX: 0, DY: -1}
	HeadingDown  = Heading{DX: 0, DY: 1}
	HeadingLeft  = Heading{DX: -1, DY: 0}
	HeadingRight = Heading{DX: 1, DY: 0}
)

// Valid reports whether h is one of the four unit axis vectors.
func (h Heading) Valid() bool {
	return Abs(h.DX)+Abs(h.DY) == 1
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsOpposite reports whether h points exactly against other.
func (h Heading) IsOpposite(other Heading) bool {
	return h.Valid() && h == other.Opposite()
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "none"
	}
}

// ParseHeading converts a heading name into a Heading.
func ParseHeading(name string) (Heading, bool) {
	switch name {
	case "up":
		return HeadingUp, true
	case "down":
		return HeadingDown, true
	case "left":
		return HeadingLeft, true
	case "right":
		return HeadingRight, true
	}
	return Heading{}, false
}

// Grid is a fixed square board. Size is the tile count per side and CellPx the
// pixel size of one tile on a canvas renderer.
type Grid struct {
	Size   int
	CellPx int
}

// NewGrid derives the tile count from a square canvas and a cell size,
// e.g. a 400 unit canvas with 20 unit cells gives a 20x20 grid.
func NewGrid(canvasPx, cellPx int) Grid {
	if cellPx <= 0 {
		return Grid{}
	}
	return Grid{Size: canvasPx / cellPx, CellPx: cellPx}
}

// Contains reports whether the cell lies inside the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// CanvasPx returns the side length of the board in pixels.
func (g Grid) CanvasPx() int {
	return g.Size * g.CellPx
}

// PixelRect returns the pixel region a renderer fills for the cell.
// Tiles leave a 2px gutter so neighbouring segments stay visually distinct.
func (g Grid) PixelRect(c Cell) Rect {
	side := g.CellPx - 2
	if side < 1 {
		side = 1
	}
	return NewRect(c.X*g.CellPx, c.Y*g.CellPx, side, side)
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// Used for hit-testing on-screen buttons.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
