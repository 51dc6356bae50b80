package web

import (
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/input"
)

// mouseID is the pointer ID used for the mouse; touch IDs are non-negative.
const mouseID = -1

// pointerInput turns presses and releases into actions. A press on a button
// fires that button; any other press starts a swipe that resolves on release.
type pointerInput struct {
	layout    Layout
	threshold float64
	swipes    map[int]*input.SwipeTracker
}

func newPointerInput(l Layout, threshold float64) *pointerInput {
	return &pointerInput{
		layout:    l,
		threshold: threshold,
		swipes:    make(map[int]*input.SwipeTracker),
	}
}

// Press handles a pointer going down.
func (p *pointerInput) Press(id, x, y int, showRestart bool) (core.Action, bool) {
	if a, ok := p.layout.Hit(x, y, showRestart); ok {
		delete(p.swipes, id)
		return a, true
	}

	s := input.NewSwipeTracker(p.threshold)
	s.Begin(float64(x), float64(y))
	p.swipes[id] = s
	return core.ActionNone, false
}

// Release handles a pointer going up at its last known position.
func (p *pointerInput) Release(id, x, y int) (core.Action, bool) {
	s, ok := p.swipes[id]
	if !ok {
		return core.ActionNone, false
	}
	delete(p.swipes, id)
	return s.End(float64(x), float64(y))
}

// Active returns the number of swipes in progress.
func (p *pointerInput) Active() int {
	return len(p.swipes)
}
