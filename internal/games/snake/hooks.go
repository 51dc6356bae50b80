package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Frame is what a renderer needs to draw one live tick.
type Frame struct {
	Snake []core.Cell // Head first
	Food  core.Cell
	Head  core.Cell // Drawn highlighted
	Score int
}

// Renderer receives a frame once per live tick. It must not change game state.
type Renderer interface {
	RenderFrame(f Frame)
}

// Audio receives fire-and-forget sound cues. A missing backend must not
// affect the game, so NopAudio is the default.
type Audio interface {
	FoodEaten()
	GameOver()
	StartMusic()
	StopMusic()
}

// Overlay is the presentation of the game-over state.
type Overlay interface {
	ShowGameOver(message string)
	ShowRestart()
	HideRestart()
}

// Hooks bundles the collaborators a Game notifies. Nil members are no-ops.
type Hooks struct {
	Renderer Renderer
	Audio    Audio
	Overlay  Overlay
}

func (h Hooks) withDefaults() Hooks {
	if h.Renderer == nil {
		h.Renderer = NopRenderer{}
	}
	if h.Audio == nil {
		h.Audio = NopAudio{}
	}
	if h.Overlay == nil {
		h.Overlay = NopOverlay{}
	}
	return h
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f Frame)

// RenderFrame calls fn(f).
func (fn RendererFunc) RenderFrame(f Frame) { fn(f) }

// NopRenderer discards frames.
type NopRenderer struct{}

func (NopRenderer) RenderFrame(Frame) {}

// NopAudio plays nothing.
type NopAudio struct{}

func (NopAudio) FoodEaten()  {}
func (NopAudio) GameOver()   {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopMusic()  {}

// NopOverlay shows nothing.
type NopOverlay struct{}

func (NopOverlay) ShowGameOver(string) {}
func (NopOverlay) ShowRestart()        {}
func (NopOverlay) HideRestart()        {}
