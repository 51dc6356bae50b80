// Package web provides the Ebiten canvas frontend for the snake game. It runs
// as a desktop window and, built for GOOS=js GOARCH=wasm, in the browser,
// with keyboard, on-screen buttons and touch swipes as input.
package web

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/scheduler"
)

var (
	bgColor     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	boardColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	buttonColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	shadeColor  = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Muter is an audio backend that can be muted from the sound button.
type Muter interface {
	ToggleMute() bool
}

// Options configures the canvas frontend.
type Options struct {
	Config         core.RuntimeConfig
	SwipeThreshold float64
	Audio          snake.Audio // Optional; also used for muting if it implements Muter
	Logger         *log.Logger // Optional; discards when nil
}

// canvasOverlay holds the game-over presentation drawn over the board.
type canvasOverlay struct {
	message string
	restart bool
}

func (o *canvasOverlay) ShowGameOver(msg string) { o.message = msg }
func (o *canvasOverlay) ShowRestart()            { o.restart = true }

func (o *canvasOverlay) HideRestart() {
	o.message = ""
	o.restart = false
}

// keyBindings maps keys to actions, checked in order each frame.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionRestart},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyM, core.ActionMute},
	{ebiten.KeyQ, core.ActionQuit},
}

// Game adapts a snake session to ebiten.Game.
type Game struct {
	game    *snake.Game
	grid    core.Grid
	layout  Layout
	pointer *pointerInput
	clock   *scheduler.Accumulator
	overlay *canvasOverlay
	frame   snake.Frame
	muter   Muter
	muted   bool
	logger  *log.Logger
}

// New wires the canvas hooks into g and starts a session.
func New(g *snake.Game, opts Options) *Game {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := g.Settings().Grid
	layout := NewLayout(grid)
	w := &Game{
		game:    g,
		grid:    grid,
		layout:  layout,
		pointer: newPointerInput(layout, opts.SwipeThreshold),
		clock:   scheduler.NewAccumulator(cfg.TickPeriod),
		overlay: &canvasOverlay{},
		logger:  logger,
	}

	audio := opts.Audio
	if audio == nil {
		audio = snake.NopAudio{}
	}
	if m, ok := audio.(Muter); ok {
		w.muter = m
	}

	g.SetHooks(snake.Hooks{
		Renderer: snake.RendererFunc(func(f snake.Frame) { w.frame = f }),
		Audio:    audio,
		Overlay:  w.overlay,
	})
	g.Reset(cfg)
	w.frame = g.Frame()
	return w
}

// Update polls input and advances the tick clock by one frame.
func (w *Game) Update() error {
	for _, a := range w.pollActions() {
		if err := w.apply(a); err != nil {
			return err
		}
	}
	w.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// pollActions collects this frame's actions from keyboard, mouse and touch.
func (w *Game) pollActions() []core.Action {
	var actions []core.Action
	add := func(a core.Action, ok bool) {
		if ok && a != core.ActionNone {
			actions = append(actions, a)
		}
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			add(b.action, true)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		add(w.pointer.Press(mouseID, x, y, w.overlay.restart))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		add(w.pointer.Release(mouseID, x, y))
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		add(w.pointer.Press(int(id), x, y, w.overlay.restart))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		add(w.pointer.Release(int(id), x, y))
	}

	return actions
}

// apply routes one action. Directions go to the router for the next tick;
// restart only acts after game over and ticks at once.
func (w *Game) apply(a core.Action) error {
	switch a {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionMute:
		if w.muter != nil {
			w.muted = w.muter.ToggleMute()
			w.logger.Debug("mute toggled", "muted", w.muted)
		}
	case core.ActionPause:
		w.game.TogglePause()
	case core.ActionRestart:
		if w.game.Restart() {
			w.logger.Info("restart")
			w.clock.Resume()
			w.tick()
		}
	default:
		w.game.Steer(a)
	}
	return nil
}

// advance feeds elapsed frame time to the clock. The clock stops on game
// over, so no tick runs until a restart resumes it.
func (w *Game) advance(dt time.Duration) {
	w.clock.Advance(dt, w.tick)
}

func (w *Game) tick() bool {
	if w.game.Tick().Dead() {
		w.logger.Info("game over", "score", w.game.Score(), "outcome", w.game.Outcome())
		return false
	}
	return true
}

// Draw renders the last frame, the HUD and the control pad.
func (w *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	b := w.layout.Board
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), boardColor, false)

	w.fillCell(screen, w.frame.Food, core.ColorFood)
	for i := len(w.frame.Snake) - 1; i >= 0; i-- {
		c := core.ColorBody
		if i == 0 {
			c = core.ColorHead
		}
		w.fillCell(screen, w.frame.Snake[i], c)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", w.frame.Score), 8, 4)
	if w.game.Paused() {
		ebitenutil.DebugPrintAt(screen, "Paused", b.W-8-6*len("Paused"), 4)
	}

	if w.overlay.message != "" {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), shadeColor, false)
		cx, cy := b.Center()
		ebitenutil.DebugPrintAt(screen, w.overlay.message, cx-3*len(w.overlay.message), cy-16)
		hint := snake.RestartHint
		ebitenutil.DebugPrintAt(screen, hint, cx-3*len(hint), cy+4)
	}

	w.drawButtons(screen)
}

func (w *Game) fillCell(screen *ebiten.Image, c core.Cell, col core.Color) {
	if !w.grid.Contains(c) {
		return
	}
	r := w.layout.CellRect(w.grid, c)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (w *Game) drawButtons(screen *ebiten.Image) {
	for _, btn := range w.layout.Buttons {
		if btn.Action == core.ActionRestart && !w.overlay.restart {
			continue
		}
		r := btn.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), buttonColor, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, rgba(core.ColorBorder), false)

		label := btn.Label
		if btn.Action == core.ActionMute && w.muted {
			label = "Muted"
		}
		cx, cy := r.Center()
		ebitenutil.DebugPrintAt(screen, label, cx-3*len(label), cy-8)
	}
}

// Layout returns the fixed canvas size; Ebiten scales it to the window.
func (w *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.layout.Width, w.layout.Height
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(g *snake.Game, opts Options) error {
	w := New(g, opts)
	ebiten.SetWindowSize(w.layout.Width*2, w.layout.Height*2)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}
