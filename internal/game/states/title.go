package states

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/engine/render"
	"github.com/Faultbox/snowfight/internal/logger"
)

// Prompt quad in normalized device coordinates.
const (
	promptLeft   = -0.5
	promptTop    = 0.06
	promptRight  = 0.5
	promptBottom = -0.06
)

// TitleConfig configures the title state.
type TitleConfig struct {
	Target render.Target
	// Prompt is the raster shown in the middle of the screen.
	Prompt *image.RGBA
	// OnStart runs once on the first key or click.
	OnStart func() error
}

// Title shows the backdrop and a play prompt until any key or click.
type Title struct {
	config TitleConfig
	log    *zap.Logger

	backdrop render.MeshID
	prompt   render.MeshID
	started  bool
}

// NewTitle creates the title state.
func NewTitle(cfg TitleConfig) *Title {
	return &Title{
		config: cfg,
		log:    logger.Named("title"),
	}
}

// Enter uploads the backdrop and prompt. Partial uploads are released on
// failure.
func (t *Title) Enter() error {
	t.started = false
	if err := t.upload(); err != nil {
		t.Exit()
		return err
	}
	t.log.Debug("title shown", zap.Bool("prompt", t.prompt != 0))
	return nil
}

func (t *Title) upload() error {
	target := t.config.Target

	var err error
	t.backdrop, err = target.Upload(geometry.Flatten(geometry.FullScreenQuad(1, geometry.White)))
	if err != nil {
		return fmt.Errorf("upload title backdrop: %w", err)
	}
	if t.config.Prompt == nil {
		return nil
	}
	if err := target.UpdateOverlay(t.config.Prompt); err != nil {
		return fmt.Errorf("upload prompt: %w", err)
	}
	quad := geometry.ScreenQuad(promptLeft, promptTop, promptRight, promptBottom, -1, geometry.White)
	if t.prompt, err = target.Upload(geometry.Flatten(quad)); err != nil {
		return fmt.Errorf("upload prompt quad: %w", err)
	}
	return nil
}

// Exit releases the title meshes.
func (t *Title) Exit() error {
	for _, id := range []render.MeshID{t.backdrop, t.prompt} {
		if id != 0 {
			t.config.Target.Release(id)
		}
	}
	t.backdrop, t.prompt = 0, 0
	return nil
}

// Started reports whether the prompt was accepted.
func (t *Title) Started() bool {
	return t.started
}

// Update does nothing; the title is static.
func (t *Title) Update(dt float64) error {
	return nil
}

// HandleInput starts the fight on the first key or click.
func (t *Title) HandleInput(in Controls) error {
	if t.started || !in.Activated() {
		return nil
	}
	t.started = true
	t.log.Info("play requested")
	if t.config.OnStart != nil {
		return t.config.OnStart()
	}
	return nil
}

// Render draws the backdrop and the prompt.
func (t *Title) Render() error {
	target := t.config.Target
	target.Begin()
	target.Draw(render.DrawCall{
		Program:  render.Backdrop,
		Mesh:     t.backdrop,
		Textured: true,
		Layer:    render.LayerBackdrop,
	})
	if t.prompt != 0 {
		target.Draw(render.DrawCall{
			Program:  render.Overlay,
			Mesh:     t.prompt,
			Textured: true,
			Layer:    render.LayerOverlay,
		})
	}
	return nil
}
