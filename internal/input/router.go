// Package input turns direction commands from any source into heading
// changes for the snake, and derives directions from swipe gestures.
package input

import "github.com/vovakirdan/snake-arcade/internal/core"

// Router filters heading requests and buffers the accepted one until the
// next tick. Only the most recent accepted request survives (no queueing).
type Router struct {
	active  core.Heading // Heading applied by the last advance
	pending core.Heading // Heading the next advance will apply
}

// NewRouter creates a router whose active and pending heading are initial.
func NewRouter(initial core.Heading) *Router {
	return &Router{active: initial, pending: initial}
}

// Reset sets both headings, discarding any buffered request.
func (r *Router) Reset(h core.Heading) {
	r.active = h
	r.pending = h
}

// Request asks for a new heading. It is rejected when it is not a unit axis
// vector or when it is the exact opposite of the active heading, so the snake
// can never fold back into its own neck within one tick.
func (r *Router) Request(h core.Heading) bool {
	if !h.Valid() || h.IsOpposite(r.active) {
		return false
	}
	r.pending = h
	return true
}

// RequestAction routes a directional action. Non-directional actions are
// ignored and reported as not accepted.
func (r *Router) RequestAction(a core.Action) bool {
	h, ok := a.Heading()
	if !ok {
		return false
	}
	return r.Request(h)
}

// Commit promotes the pending heading to active and returns it.
// Called once at the start of every tick.
func (r *Router) Commit() core.Heading {
	r.active = r.pending
	return r.active
}

// Active returns the heading used by the most recent advance.
func (r *Router) Active() core.Heading {
	return r.active
}

// Pending returns the heading the next advance will use.
func (r *Router) Pending() core.Heading {
	return r.pending
}
