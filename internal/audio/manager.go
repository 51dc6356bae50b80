package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config holds the audio settings.
type Config struct {
	Enabled      bool
	Muted        bool
	MasterVolume float64
	MusicVolume  float64
}

// DefaultConfig returns audio on, unmuted, at full volume.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 1.0,
		MusicVolume:  1.0,
	}
}

// Manager plays the game's cues through a single mixer. It implements the
// game's audio hooks; every method is safe to call before Initialize or
// after initialisation failed, in which case it only tracks state.
type Manager struct {
	mu          sync.Mutex
	cfg         Config
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	wantMusic   bool // The session is running and would have music
	initialized bool
}

// NewManager creates a manager. A nil logger discards log output.
func NewManager(cfg Config, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer. On failure the
// error is logged and returned, and the manager stays silent.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.logger.Warn("audio unavailable, continuing silently", "error", err)
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	if m.wantMusic && !m.cfg.Muted {
		m.startMusicLocked()
	}
	m.logger.Debug("audio initialised", "rate", int(sampleRate))
	return nil
}

// Close silences everything and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.music = nil
	m.initialized = false
}

// FoodEaten plays the eat chirp.
func (m *Manager) FoodEaten() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playLocked(NewTone(EatTone, sampleRate), m.cfg.MasterVolume)
}

// GameOver plays the game-over buzz.
func (m *Manager) GameOver() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playLocked(NewTone(GameOverTone, sampleRate), m.cfg.MasterVolume)
}

// StartMusic starts the bass line unless it is already playing or muted.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.wantMusic = true
	if m.cfg.Muted {
		return
	}
	m.startMusicLocked()
}

// StopMusic stops the bass line.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.wantMusic = false
	m.stopMusicLocked()
}

// ToggleMute flips the mute state and returns it. Muting stops the music;
// unmuting plays the eat chirp as feedback and resumes the music if the
// session wants it.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg.Muted = !m.cfg.Muted
	if m.cfg.Muted {
		m.stopMusicLocked()
		m.logger.Debug("audio muted")
		return true
	}

	m.playLocked(NewTone(EatTone, sampleRate), m.cfg.MasterVolume)
	if m.wantMusic {
		m.startMusicLocked()
	}
	m.logger.Debug("audio unmuted")
	return false
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Muted
}

func (m *Manager) startMusicLocked() {
	if !m.initialized || m.musicActiveLocked() {
		return
	}
	ctrl := &beep.Ctrl{Streamer: NewMusic(sampleRate)}
	m.music = ctrl

	speaker.Lock()
	m.mixer.Add(newVolume(ctrl, m.cfg.MasterVolume*m.cfg.MusicVolume))
	speaker.Unlock()
}

func (m *Manager) stopMusicLocked() {
	if m.music == nil {
		return
	}
	if m.initialized {
		speaker.Lock()
		m.music.Paused = true
		m.music.Streamer = nil
		speaker.Unlock()
	}
	m.music = nil
}

func (m *Manager) musicActiveLocked() bool {
	return m.music != nil && !m.music.Paused
}

func (m *Manager) playLocked(s beep.Streamer, vol float64) {
	if !m.initialized || m.cfg.Muted {
		return
	}
	speaker.Lock()
	m.mixer.Add(newVolume(s, vol))
	speaker.Unlock()
}
