package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Body is the ordered chain of cells occupied by the snake, head first.
// It always holds at least one cell and is only changed by Advance and Grow.
type Body struct {
	cells   []core.Cell
	growing bool // Keep the tail on the next Advance

	vacated    core.Cell // Tail cell dropped by the last Advance
	hasVacated bool
}

// NewBody creates a body from head to tail.
func NewBody(head core.Cell, rest ...core.Cell) *Body {
	cells := make([]core.Cell, 0, len(rest)+1)
	cells = append(cells, head)
	cells = append(cells, rest...)
	return &Body{cells: cells}
}

// Advance moves the snake one cell along h: a new head is pushed at the
// front and the tail is dropped, unless growth is pending, in which case the
// tail stays and the snake is one cell longer.
func (b *Body) Advance(h core.Heading) {
	head := b.cells[0].Add(h)

	b.cells = append(b.cells, core.Cell{})
	copy(b.cells[1:], b.cells[:len(b.cells)-1])
	b.cells[0] = head

	if b.growing {
		b.growing = false
		b.hasVacated = false
		return
	}

	last := len(b.cells) - 1
	b.vacated = b.cells[last]
	b.hasVacated = true
	b.cells = b.cells[:last]
}

// Grow lengthens the snake by one cell. Right after an Advance the dropped
// tail is put back, so the growth is visible on the same tick; before the
// first Advance the growth is deferred to the next one.
func (b *Body) Grow() {
	if b.hasVacated {
		b.cells = append(b.cells, b.vacated)
		b.hasVacated = false
		return
	}
	b.growing = true
}

// GrowthPending reports whether the next Advance will keep the tail.
func (b *Body) GrowthPending() bool {
	return b.growing
}

// Head returns the first cell.
func (b *Body) Head() core.Cell {
	return b.cells[0]
}

// Tail returns the last cell.
func (b *Body) Tail() core.Cell {
	return b.cells[len(b.cells)-1]
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the cells, head first.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether any cell, head included, equals c.
func (b *Body) Contains(c core.Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// HeadOnBody reports whether the head shares a cell with the rest of the body.
func (b *Body) HeadOnBody() bool {
	head := b.cells[0]
	for _, seg := range b.cells[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
