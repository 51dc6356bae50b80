package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// statusLine is the terminal overlay: the game-over message and whether the
// restart prompt is showing. The model reads it in View.
type statusLine struct {
	message string
	restart bool
}

func (s *statusLine) ShowGameOver(msg string) { s.message = msg }
func (s *statusLine) ShowRestart()            { s.restart = true }

func (s *statusLine) HideRestart() {
	s.message = ""
	s.restart = false
}

// loggedAudio forwards cues to the audio backend and records game events.
type loggedAudio struct {
	next   snake.Audio
	logger *log.Logger
	score  func() int
}

func (a loggedAudio) FoodEaten() {
	a.logger.Debug("food eaten", "score", a.score())
	a.next.FoodEaten()
}

func (a loggedAudio) GameOver() {
	a.logger.Info("game over", "score", a.score())
	a.next.GameOver()
}

func (a loggedAudio) StartMusic() {
	a.logger.Debug("session started")
	a.next.StartMusic()
}

func (a loggedAudio) StopMusic() { a.next.StopMusic() }

// frameLogger traces live ticks at debug level.
func frameLogger(logger *log.Logger) snake.Renderer {
	return snake.RendererFunc(func(f snake.Frame) {
		logger.Debug("tick", "head", f.Head, "len", len(f.Snake), "food", f.Food)
	})
}
