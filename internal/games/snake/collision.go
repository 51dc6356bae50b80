package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Outcome classifies the snake after an advance.
type Outcome int

const (
	OutcomeAlive Outcome = iota
	OutcomeDeadWall
	OutcomeDeadSelf
)

// Dead reports whether the outcome ends the session.
func (o Outcome) Dead() bool {
	return o != OutcomeAlive
}

func (o Outcome) String() string {
	switch o {
	case OutcomeAlive:
		return "alive"
	case OutcomeDeadWall:
		return "dead_wall"
	case OutcomeDeadSelf:
		return "dead_self"
	default:
		return "unknown"
	}
}

// Classify checks the head against the board edges and the rest of the body.
// Walls are checked first, so a head that is both off-board and on the body
// reports OutcomeDeadWall.
func Classify(b *Body, grid core.Grid) Outcome {
	if !grid.Contains(b.Head()) {
		return OutcomeDeadWall
	}
	if b.HeadOnBody() {
		return OutcomeDeadSelf
	}
	return OutcomeAlive
}
