package web

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

type fakeMuter struct {
	snake.NopAudio
	muted bool
}

func (m *fakeMuter) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

// newWallGame starts a one-cell snake two moves from the right wall.
func newWallGame(t *testing.T, audio snake.Audio) (*Game, *snake.Game) {
	t.Helper()
	g := snake.NewWithSettings("snake", "Snake", snake.Settings{
		Grid:    core.NewGrid(100, 20),
		Start:   []core.Cell{{X: 3, Y: 2}},
		Heading: core.HeadingRight,
		Food:    core.Cell{X: 0, Y: 0},
	})
	w := New(g, Options{
		Config: core.RuntimeConfig{Seed: 1, TickPeriod: 100 * time.Millisecond},
		Audio:  audio,
	})
	return w, g
}

func TestAdvanceTicksOnPeriod(t *testing.T) {
	w, g := newWallGame(t, nil)

	w.advance(60 * time.Millisecond)
	if g.Frame().Head != (core.Cell{X: 3, Y: 2}) {
		t.Fatal("no tick before a full period")
	}
	w.advance(60 * time.Millisecond)
	if w.frame.Head != (core.Cell{X: 4, Y: 2}) {
		t.Errorf("rendered head = %v, expected (4,2)", w.frame.Head)
	}
}

func TestClockStopsOnGameOverAndRestartResumes(t *testing.T) {
	w, g := newWallGame(t, nil)

	w.advance(time.Second)
	if !g.Over() {
		t.Fatal("expected game over")
	}
	if n := w.clock.Advance(time.Second, w.tick); n != 0 {
		t.Fatalf("stopped clock ran %d ticks", n)
	}
	if w.overlay.message != snake.GameOverMessage || !w.overlay.restart {
		t.Errorf("overlay = %+v", w.overlay)
	}
	// The dead head is never rendered.
	if w.frame.Head != (core.Cell{X: 4, Y: 2}) {
		t.Errorf("last frame head = %v", w.frame.Head)
	}

	if err := w.apply(core.ActionRestart); err != nil {
		t.Fatalf("apply(restart) error = %v", err)
	}
	if g.Over() || w.overlay.restart {
		t.Errorf("restart: over=%v restart shown=%v", g.Over(), w.overlay.restart)
	}
	if w.frame.Head != (core.Cell{X: 4, Y: 2}) {
		t.Errorf("restart should tick at once, head = %v", w.frame.Head)
	}
}

func TestApplyActions(t *testing.T) {
	muter := &fakeMuter{}
	w, g := newWallGame(t, muter)

	if err := w.apply(core.ActionDown); err != nil {
		t.Fatal(err)
	}
	w.advance(100 * time.Millisecond)
	if g.Frame().Head != (core.Cell{X: 3, Y: 3}) {
		t.Errorf("head = %v, expected (3,3)", g.Frame().Head)
	}

	w.apply(core.ActionMute)
	if !w.muted || !muter.muted {
		t.Error("sound button should mute")
	}

	w.apply(core.ActionPause)
	w.advance(time.Second)
	if g.Frame().Head != (core.Cell{X: 3, Y: 3}) {
		t.Error("paused game moved")
	}

	if err := w.apply(core.ActionQuit); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit error = %v, expected ebiten.Termination", err)
	}
}

func TestKeyBindingsCoverActions(t *testing.T) {
	seen := make(map[core.Action]bool)
	for _, b := range keyBindings {
		seen[b.action] = true
	}
	for _, a := range []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionRestart, core.ActionPause, core.ActionMute, core.ActionQuit,
	} {
		if !seen[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}
