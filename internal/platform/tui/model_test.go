package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

type fakeAudio struct {
	snake.NopAudio
	muted  bool
	eaten  int
	toggle int
}

func (a *fakeAudio) FoodEaten() { a.eaten++ }

func (a *fakeAudio) ToggleMute() bool {
	a.toggle++
	a.muted = !a.muted
	return a.muted
}

// newNearWallModel starts a one-cell snake two moves from the right wall of
// a 5x5 board.
func newNearWallModel(t *testing.T, audio snake.Audio) (Model, *snake.Game) {
	t.Helper()
	g := snake.NewWithSettings("snake", "Snake", snake.Settings{
		Grid:    core.NewGrid(100, 20),
		Start:   []core.Cell{{X: 3, Y: 2}},
		Heading: core.HeadingRight,
		Food:    core.Cell{X: 0, Y: 0},
	})
	m := NewModel(g, Options{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1},
		Audio:  audio,
	})
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelTickReschedulesWhileRunning(t *testing.T) {
	m, g := newNearWallModel(t, nil)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil || !m.ticking {
		t.Fatal("a live tick should schedule the next one")
	}
	if g.Frame().Head != (core.Cell{X: 4, Y: 2}) {
		t.Errorf("head = %v", g.Frame().Head)
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	m, g := newNearWallModel(t, nil)
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, TickMsg{})

	if cmd != nil || m.ticking {
		t.Fatal("no tick may be scheduled after game over")
	}
	if !g.Over() {
		t.Fatal("expected game over")
	}
	if view := m.View(); !strings.Contains(view, snake.GameOverMessage) {
		t.Error("view should show the game over message")
	}
}

func TestModelRestart(t *testing.T) {
	m, g := newNearWallModel(t, nil)

	// Restart is ignored while running.
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil || g.Frame().Head != (core.Cell{X: 3, Y: 2}) {
		t.Fatal("restart while running should do nothing")
	}

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if !g.Over() {
		t.Fatal("expected game over")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil || !m.ticking {
		t.Fatal("restart should restart the tick loop")
	}
	if g.Over() || g.Score() != 0 {
		t.Errorf("restart: over=%v score=%d", g.Over(), g.Score())
	}
	if g.Frame().Head != (core.Cell{X: 4, Y: 2}) {
		t.Errorf("restart ticks immediately from the start cell, head = %v", g.Frame().Head)
	}
	if strings.Contains(m.View(), snake.GameOverMessage) {
		t.Error("restart should clear the game over message")
	}
}

func TestModelSteering(t *testing.T) {
	m, g := newNearWallModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})
	if g.Frame().Head != (core.Cell{X: 3, Y: 3}) {
		t.Errorf("head = %v, expected (3,3)", g.Frame().Head)
	}

	// A reversal is dropped and the snake keeps moving down.
	m, _ = update(t, m, runeKey('w'))
	update(t, m, TickMsg{})
	if g.Frame().Head != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3,4)", g.Frame().Head)
	}
}

func TestModelMuteAndQuit(t *testing.T) {
	audio := &fakeAudio{}
	m, _ := newNearWallModel(t, audio)

	m, _ = update(t, m, runeKey('m'))
	if audio.toggle != 1 || !m.muted {
		t.Errorf("mute: toggles=%d muted=%v", audio.toggle, m.muted)
	}
	if !strings.Contains(m.View(), "[muted]") {
		t.Error("view should show the muted marker")
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newNearWallModel(t, nil)
	m, _ = update(t, m, TickMsg{})
	head := g.Frame().Head

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if g.Frame().Head != head {
		t.Error("resize must not reset the session")
	}
}
