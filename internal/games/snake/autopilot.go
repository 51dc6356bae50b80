package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Autopilot is a greedy input source used by the headless simulator.
// Each tick it picks the non-reversing direction whose next cell is on the
// board and off the body, preferring the one closest to the food.
type Autopilot struct {
	game *Game
}

// NewAutopilot creates an autopilot that reads the given game.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

var autopilotOrder = []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

// Next returns the direction to request before the coming tick, or
// ActionNone when every move is fatal.
func (a *Autopilot) Next() core.Action {
	s := a.game.session
	if s.Phase != PhaseRunning {
		return core.ActionNone
	}

	head := s.Body.Head()
	active := s.Router.Active()
	tail := s.Body.Tail()

	best := core.ActionNone
	bestDist := -1
	for _, act := range autopilotOrder {
		h, _ := act.Heading()
		if h.IsOpposite(active) {
			continue
		}
		next := head.Add(h)
		if !a.game.settings.Grid.Contains(next) {
			continue
		}
		// The tail moves away this tick unless growth keeps it.
		if s.Body.Contains(next) && (next != tail || s.Body.GrowthPending()) {
			continue
		}
		d := core.Abs(next.X-s.Food.X) + core.Abs(next.Y-s.Food.Y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = act, d
		}
	}
	return best
}
