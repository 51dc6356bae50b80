package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/input"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Messages shown when the session ends.
const (
	GameOverMessage = "Game Over!"
	RestartHint     = "Press Space or R to restart"
)

// Phase is the session-level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// Settings describes the board and the starting position of a session.
type Settings struct {
	Grid    core.Grid
	Start   []core.Cell // Head first, at least one cell
	Heading core.Heading
	Food    core.Cell
	Policy  FoodPolicy
}

// DefaultSettings returns the reference setup: a 20x20 board (400 unit
// canvas, 20 unit cells), a three cell snake at the centre heading right and
// the first food at (15, 15).
func DefaultSettings() Settings {
	return Settings{
		Grid: core.NewGrid(400, 20),
		Start: []core.Cell{
			{X: 10, Y: 10}, // Head
			{X: 9, Y: 10},
			{X: 8, Y: 10},
		},
		Heading: core.HeadingRight,
		Food:    core.Cell{X: 15, Y: 15},
		Policy:  FoodUnguarded,
	}
}

// Session is the complete mutable state of one game. Restart replaces all of
// it at once.
type Session struct {
	Body   *Body
	Router *input.Router
	Food   core.Cell
	Score  int
	Phase  Phase
	Tick   uint64
	Last   Outcome
}

// Game runs the rules: it owns the session, advances it one tick at a time
// and notifies its hooks. It is not safe for concurrent use; frontends call it
// from their single update goroutine.
type Game struct {
	id       string
	title    string
	settings Settings
	rng      *rand.Rand
	spawner  *Spawner
	session  Session
	hooks    Hooks
	paused   bool
}

// Package-level settings applied by the registry factories, set from the
// loaded config before a game is created.
var currentSettings = DefaultSettings()

// SetSettings replaces the settings used by newly created games.
func SetSettings(s Settings) {
	currentSettings = s
}

// New creates the classic game, using the configured food policy.
func New() *Game {
	return NewWithSettings("snake", "Snake", currentSettings)
}

// NewGuarded creates a game whose food never respawns under the snake.
func NewGuarded() *Game {
	s := currentSettings
	s.Policy = FoodGuarded
	return NewWithSettings("snake_guarded", "Snake (Guarded Food)", s)
}

// NewWithSettings creates a game with explicit settings. Call Reset before use.
func NewWithSettings(id, title string, s Settings) *Game {
	return &Game{
		id:       id,
		title:    title,
		settings: s,
		hooks:    Hooks{}.withDefaults(),
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_guarded", func() registry.Game {
		return NewGuarded()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Settings returns the board and start configuration.
func (g *Game) Settings() Settings {
	return g.settings
}

// SetHooks installs the render, audio and overlay collaborators.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h.withDefaults()
}

// Reset seeds the RNG and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewSpawner(g.rng, g.settings.Grid, g.settings.Policy)
	g.startSession()
}

// startSession reinitialises every piece of session state together.
func (g *Game) startSession() {
	start := g.settings.Start
	g.session = Session{
		Body:   NewBody(start[0], start[1:]...),
		Router: input.NewRouter(g.settings.Heading),
		Food:   g.settings.Food,
		Phase:  PhaseRunning,
		Last:   OutcomeAlive,
	}
	g.paused = false

	g.hooks.Overlay.HideRestart()
	g.hooks.Audio.StartMusic()
}

// Steer forwards a direction command to the input router. It returns whether
// the request was accepted; reversals, non-directional actions and commands
// after game over are ignored.
func (g *Game) Steer(a core.Action) bool {
	if g.session.Phase != PhaseRunning {
		return false
	}
	return g.session.Router.RequestAction(a)
}

// Restart starts a new session. It only has an effect after game over and
// reports whether a restart happened; the caller resumes ticking.
func (g *Game) Restart() bool {
	if g.session.Phase != PhaseGameOver {
		return false
	}
	g.startSession()
	return true
}

// TogglePause pauses or resumes a running session.
func (g *Game) TogglePause() bool {
	if g.session.Phase == PhaseRunning {
		g.paused = !g.paused
	}
	return g.paused
}

// Tick advances the session by one step:
// advance, classify, then either end the session or eat and render.
// Ticks while paused or after game over change nothing.
func (g *Game) Tick() Outcome {
	s := &g.session
	if s.Phase != PhaseRunning || g.paused {
		return s.Last
	}

	s.Tick++
	s.Body.Advance(s.Router.Commit())
	s.Last = Classify(s.Body, g.settings.Grid)

	if s.Last.Dead() {
		s.Phase = PhaseGameOver
		g.hooks.Audio.StopMusic()
		g.hooks.Audio.GameOver()
		g.hooks.Overlay.ShowGameOver(GameOverMessage)
		g.hooks.Overlay.ShowRestart()
		return s.Last
	}

	g.eat()
	g.hooks.Renderer.RenderFrame(g.Frame())
	return s.Last
}

// eat consumes the food if the head is on it.
func (g *Game) eat() {
	s := &g.session
	if s.Body.Head() != s.Food {
		return
	}
	s.Score++
	s.Body.Grow()
	g.hooks.Audio.FoodEaten()
	s.Food = g.spawner.Respawn(s.Body.Contains)
}

// Step applies the frame's actions in arrival order, then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart:
			g.Restart()
		case core.ActionPause:
			g.TogglePause()
		default:
			g.Steer(a)
		}
	}

	ticked := g.session.Phase == PhaseRunning && !g.paused
	g.Tick()
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// Frame returns the current board for renderers.
func (g *Game) Frame() Frame {
	return Frame{
		Snake: g.session.Body.Cells(),
		Food:  g.session.Food,
		Head:  g.session.Body.Head(),
		Score: g.session.Score,
	}
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.session.Phase == PhaseGameOver
}

// Paused reports whether ticks are suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Score returns the food eaten this session.
func (g *Game) Score() int {
	return g.session.Score
}

// Outcome returns the classification of the last tick.
func (g *Game) Outcome() Outcome {
	return g.session.Last
}

// Heading returns the active heading.
func (g *Game) Heading() core.Heading {
	return g.session.Router.Active()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.session
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", s.Tick, s.Score, s.Phase)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Pending: %s\n", s.Body.Len(), s.Router.Active(), s.Router.Pending())
	head := s.Body.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, s.Food.X, s.Food.Y)
	fmt.Fprintf(&b, "Outcome: %s, Paused: %v\n", s.Last, g.paused)
	return b.String()
}
