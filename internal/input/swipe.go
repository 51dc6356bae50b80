package input

import "github.com/vovakirdan/snake-arcade/internal/core"

// DetectSwipe derives a direction from the displacement between the start and
// end of a touch. The dominant axis wins (a tie counts as vertical) and the
// gesture only registers when that axis moved strictly more than threshold.
// Screen coordinates grow downwards, so a positive dy is a swipe down.
func DetectSwipe(dx, dy, threshold float64) (core.Action, bool) {
	if core.AbsF(dx) > core.AbsF(dy) {
		if core.AbsF(dx) <= threshold {
			return core.ActionNone, false
		}
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}

	if core.AbsF(dy) <= threshold {
		return core.ActionNone, false
	}
	if dy > 0 {
		return core.ActionDown, true
	}
	return core.ActionUp, true
}

// SwipeTracker remembers where a touch started and resolves it into a
// direction when the touch ends.
type SwipeTracker struct {
	threshold      float64
	startX, startY float64
	active         bool
}

// NewSwipeTracker creates a tracker. A non-positive threshold falls back to
// core.DefaultSwipeThreshold.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	if threshold <= 0 {
		threshold = core.DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Begin records the touch start point.
func (s *SwipeTracker) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// Active reports whether a touch is in progress.
func (s *SwipeTracker) Active() bool {
	return s.active
}

// End resolves the gesture at the touch end point. Without a matching Begin
// nothing is emitted.
func (s *SwipeTracker) End(x, y float64) (core.Action, bool) {
	if !s.active {
		return core.ActionNone, false
	}
	s.active = false
	return DetectSwipe(x-s.startX, y-s.startY, s.threshold)
}
