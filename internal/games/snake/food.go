package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// FoodPolicy decides whether respawned food may land under the snake.
type FoodPolicy int

const (
	// FoodUnguarded draws any cell on the board, snake or not.
	FoodUnguarded FoodPolicy = iota
	// FoodGuarded draws only among cells the snake does not occupy.
	FoodGuarded
)

func (p FoodPolicy) String() string {
	switch p {
	case FoodGuarded:
		return "guarded"
	default:
		return "unguarded"
	}
}

// ParseFoodPolicy converts a config value into a FoodPolicy.
func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch s {
	case "", "unguarded":
		return FoodUnguarded, nil
	case "guarded":
		return FoodGuarded, nil
	}
	return FoodUnguarded, fmt.Errorf("snake: unknown food policy %q", s)
}

// Spawner picks food cells with a seeded RNG.
type Spawner struct {
	rng    *rand.Rand
	grid   core.Grid
	policy FoodPolicy
}

// NewSpawner creates a spawner for the given board.
func NewSpawner(rng *rand.Rand, grid core.Grid, policy FoodPolicy) *Spawner {
	return &Spawner{rng: rng, grid: grid, policy: policy}
}

// Policy returns the active respawn policy.
func (s *Spawner) Policy() FoodPolicy {
	return s.policy
}

// Respawn returns the cell for the next food item. occupied may be nil.
// Under FoodGuarded a full board falls back to an unguarded draw.
func (s *Spawner) Respawn(occupied func(core.Cell) bool) core.Cell {
	if s.policy == FoodGuarded && occupied != nil {
		if c, ok := s.freeCell(occupied); ok {
			return c
		}
	}
	x := s.rng.Intn(s.grid.Size)
	y := s.rng.Intn(s.grid.Size)
	return core.Cell{X: x, Y: y}
}

// freeCell picks uniformly among cells not reported as occupied.
func (s *Spawner) freeCell(occupied func(core.Cell) bool) (core.Cell, bool) {
	var free []core.Cell
	for y := range s.grid.Size {
		for x := range s.grid.Size {
			c := core.Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
