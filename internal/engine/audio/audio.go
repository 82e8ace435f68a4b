// Package audio plays the looping background music.
package audio

import (
	"bytes"
	"fmt"
	"io"
	gomath "math"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Output is the sound device the manager streams to.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Speaker is the system audio device.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (Speaker) Play(s ...beep.Streamer)                       { speaker.Play(s...) }
func (Speaker) Clear()                                        { speaker.Clear() }
func (Speaker) Lock()                                         { speaker.Lock() }
func (Speaker) Unlock()                                       { speaker.Unlock() }

// Options holds the initial volume settings.
type Options struct {
	MasterVolume float64
	MusicVolume  float64
	Muted        bool
}

// Manager handles background music playback.
type Manager struct {
	mu  sync.RWMutex
	out Output
	log *zap.Logger

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Music
	music       beep.StreamSeekCloser
	musicCtrl   *beep.Ctrl
	musicVolume *effects.Volume
	musicName   string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	musicLevel   float64
	muted        bool
}

// New creates a manager streaming to out.
func New(out Output, opts Options) *Manager {
	return &Manager{
		out:          out,
		log:          logger.Named("audio"),
		masterVolume: clamp(opts.MasterVolume, 0, 1),
		musicLevel:   clamp(opts.MusicVolume, 0, 1),
		muted:        opts.Muted,
	}
}

// Init initializes the output device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := m.out.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopMusic()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// decode picks a decoder from the file extension of name.
func decode(data []byte, name string) (beep.StreamSeekCloser, beep.Format, error) {
	r := io.NopCloser(bytes.NewReader(data))
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return mp3.Decode(r)
	case ".wav":
		return wav.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format: %s", name)
	}
}

// PlayMusic decodes data and loops it until stopped. name selects the
// decoder by extension and is reported by MusicName.
func (m *Manager) PlayMusic(data []byte, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopMusic()

	streamer, format, err := decode(data, name)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	var looped beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != m.sampleRate {
		looped = beep.Resample(4, format.SampleRate, m.sampleRate, looped)
	}

	m.music = streamer
	m.musicName = name
	m.musicCtrl = &beep.Ctrl{Streamer: looped}
	m.musicVolume = &effects.Volume{Streamer: m.musicCtrl, Base: 2}
	m.applyVolume()

	m.out.Play(m.musicVolume)
	m.log.Info("music started",
		zap.String("name", name),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels),
	)
	return nil
}

// StopMusic stops the current music.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusic()
}

func (m *Manager) stopMusic() {
	if m.musicCtrl == nil {
		return
	}
	m.out.Clear()
	if err := m.music.Close(); err != nil {
		m.log.Warn("close music stream", zap.Error(err))
	}
	m.music = nil
	m.musicCtrl = nil
	m.musicVolume = nil
	m.musicName = ""
}

// PauseMusic pauses the current music.
func (m *Manager) PauseMusic() {
	m.setPaused(true)
}

// ResumeMusic resumes paused music.
func (m *Manager) ResumeMusic() {
	m.setPaused(false)
}

func (m *Manager) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.musicCtrl == nil {
		return
	}
	m.out.Lock()
	m.musicCtrl.Paused = paused
	m.out.Unlock()
}

// IsPlaying reports whether music is loaded and not paused.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.musicCtrl == nil {
		return false
	}
	m.out.Lock()
	defer m.out.Unlock()
	return !m.musicCtrl.Paused
}

// MusicName returns the name of the current music, or "".
func (m *Manager) MusicName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicName
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.applyVolume()
}

// SetMusicVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicLevel = clamp(vol, 0, 1)
	m.applyVolume()
}

// ToggleMute flips the mute state and returns the new state.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.applyVolume()
	return m.muted
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// MusicVolume returns the music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicLevel
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Gain returns the linear gain applied to the music.
func (m *Manager) Gain() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gain()
}

func (m *Manager) gain() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.musicLevel
}

// applyVolume pushes the current gain into the playing stream.
// Callers hold m.mu.
func (m *Manager) applyVolume() {
	if m.musicVolume == nil {
		return
	}
	m.out.Lock()
	defer m.out.Unlock()

	g := m.gain()
	m.musicVolume.Silent = g <= 0
	m.musicVolume.Volume = volumeExponent(g)
}

// volumeExponent converts a linear gain to the base-2 exponent used by
// effects.Volume.
func volumeExponent(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return gomath.Log2(gain)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
