package states

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/game/scene"
	"github.com/Faultbox/snowfight/internal/logger"
)

// Muter toggles the background music.
type Muter interface {
	ToggleMute() bool
}

// Scene is the part of *scene.Scene the fight drives.
type Scene interface {
	Frame(dt float64)
	Close()
}

var _ Scene = (*scene.Scene)(nil)

// FightConfig configures the fight state.
type FightConfig struct {
	// Build creates the scene on Enter.
	Build func() (Scene, error)
	// Audio is optional.
	Audio Muter
	// MuteKey toggles the music.
	MuteKey sdl.Scancode
}

// Fight runs the snowball fight scene.
type Fight struct {
	config FightConfig
	log    *zap.Logger

	scene Scene
	dt    float64
}

// NewFight creates the fight state. A zero MuteKey defaults to M.
func NewFight(cfg FightConfig) *Fight {
	if cfg.MuteKey == sdl.SCANCODE_UNKNOWN {
		cfg.MuteKey = sdl.SCANCODE_M
	}
	return &Fight{
		config: cfg,
		log:    logger.Named("fight"),
	}
}

// Enter builds the scene.
func (f *Fight) Enter() error {
	s, err := f.config.Build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	f.scene = s
	f.log.Info("fight started")
	return nil
}

// Exit releases the scene.
func (f *Fight) Exit() error {
	if f.scene != nil {
		f.scene.Close()
		f.scene = nil
	}
	return nil
}

// Update records the frame time. The scene steps during Render so that
// simulation and draw submission stay in one frame.
func (f *Fight) Update(dt float64) error {
	f.dt = dt
	return nil
}

// HandleInput toggles the music on the mute key.
func (f *Fight) HandleInput(in Controls) error {
	if f.config.Audio != nil && in.IsKeyPressed(f.config.MuteKey) {
		muted := f.config.Audio.ToggleMute()
		f.log.Debug("mute toggled", zap.Bool("muted", muted))
	}
	return nil
}

// Render runs one scene frame.
func (f *Fight) Render() error {
	if f.scene == nil {
		return fmt.Errorf("fight: scene not built")
	}
	f.scene.Frame(f.dt)
	return nil
}
