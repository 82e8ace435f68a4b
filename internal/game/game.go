// Package game implements the main loop and wires the subsystems together.
package game

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/assets"
	"github.com/Faultbox/snowfight/internal/config"
	"github.com/Faultbox/snowfight/internal/engine/audio"
	"github.com/Faultbox/snowfight/internal/engine/input"
	"github.com/Faultbox/snowfight/internal/engine/overlay"
	"github.com/Faultbox/snowfight/internal/engine/renderer"
	"github.com/Faultbox/snowfight/internal/engine/scroller"
	"github.com/Faultbox/snowfight/internal/engine/window"
	"github.com/Faultbox/snowfight/internal/game/scene"
	"github.com/Faultbox/snowfight/internal/game/states"
	"github.com/Faultbox/snowfight/internal/logger"
)

// Title is the window title.
const Title = "Snowfight"

// PromptText is shown until the first key or click.
const PromptText = "Click or press any key to play"

// maxFrameTime caps dt so a stalled frame does not teleport snowballs.
const maxFrameTime = 100.0 // ms

// Game is the main game instance.
type Game struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	audio    *audio.Manager
	states   *states.Manager
}

// New creates the window, renderer and audio, and schedules the title state.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// The GL context must exist before the renderer.
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	g.input = input.New()
	g.assets = assets.NewManager(cfg.Data.AssetDir)
	g.audio = g.newAudio()

	prompt, err := renderPrompt(cfg.Scroller.FontSize)
	if err != nil {
		g.Close()
		return nil, err
	}

	g.states = states.NewManager()
	g.states.Change(states.NewTitle(states.TitleConfig{
		Target:  g.renderer,
		Prompt:  prompt,
		OnStart: g.start,
	}))

	g.log.Info("game initialized")
	return g, nil
}

// newAudio returns nil when audio is disabled or no device is available.
func (g *Game) newAudio() *audio.Manager {
	if !g.config.Audio.Enabled {
		return nil
	}
	m := audio.New(audio.Speaker{}, audio.Options{
		MasterVolume: float64(g.config.Audio.MasterVolume),
		MusicVolume:  float64(g.config.Audio.MusicVolume),
		Muted:        g.config.Audio.Muted,
	})
	if err := m.Init(); err != nil {
		g.log.Warn("audio unavailable", zap.Error(err))
		return nil
	}

	// Reading the track can overlap with the title screen.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := g.assets.Preload(ctx, g.config.Audio.MusicFile); err != nil {
			g.log.Warn("music preload failed", zap.Error(err))
		}
	}()
	return m
}

// renderPrompt draws the title prompt centered on a transparent raster.
func renderPrompt(fontSize float64) (*image.RGBA, error) {
	face, err := overlay.NewItalicFace(fontSize * 1.5)
	if err != nil {
		return nil, err
	}
	c := overlay.New(overlay.DefaultWidth/2, overlay.DefaultHeight, face)
	x := (float64(c.Bounds().Dx()) - c.MeasureText(PromptText)) / 2
	c.FillText(PromptText, max(x, 0), fontSize*1.5, color.White)
	return c.Image(), nil
}

// start runs when the player accepts the prompt: the music begins and the
// fight replaces the title.
func (g *Game) start() error {
	if g.audio != nil {
		g.playMusic()
	}
	var muter states.Muter
	if g.audio != nil {
		muter = g.audio
	}
	g.states.Change(states.NewFight(states.FightConfig{
		Build: g.buildScene,
		Audio: muter,
	}))
	return nil
}

func (g *Game) playMusic() {
	name := g.config.Audio.MusicFile
	data, err := g.assets.Load(name)
	if err != nil {
		g.log.Warn("music not loaded", zap.String("file", name), zap.Error(err))
		return
	}
	if err := g.audio.PlayMusic(data, name); err != nil {
		g.log.Warn("music not played", zap.String("file", name), zap.Error(err))
	}
}

func (g *Game) buildScene() (states.Scene, error) {
	sc := g.config.Scene
	seed := sc.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.log.Info("building scene", zap.Uint64("seed", seed))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cfg := scene.DefaultConfig(sc.WorldScale)
	cfg.Params.Population = sc.SnowmanCount
	cfg.Params.RarePopulation = sc.RareSnowmanCount
	cfg.Params.RareChance = sc.RareChance

	banner, err := newBanner(g.config.Scroller)
	if err != nil {
		return nil, err
	}
	s, err := scene.New(cfg, g.renderer, banner, rng)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newBanner builds the scrolling message over an overlay canvas as tall as
// the text strip.
func newBanner(cfg config.ScrollerConfig) (*scroller.Banner, error) {
	face, err := overlay.NewItalicFace(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	factory := func(w, h int) scroller.Canvas {
		return overlay.New(w, h, face)
	}
	s := scroller.New(cfg.Message, cfg.FontSize, cfg.ScrollStep, factory)

	bc := scroller.DefaultBannerConfig()
	bc.LeadIn = float64(cfg.LeadIn.Milliseconds())
	bc.FadeIn = float64(cfg.FadeIn.Milliseconds())
	bc.UpdateInterval = cfg.UpdateInterval

	return scroller.NewBanner(bc, s, factory(overlay.DefaultWidth, s.TextAreaHeight())), nil
}

// Run starts the main loop and returns when the player quits.
func (g *Game) Run() error {
	g.running = true

	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := min(float64(frameStart.Sub(lastTime).Microseconds())/1000, maxFrameTime)
		lastTime = frameStart

		// 1. Input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleWindowEvents()
		if err := g.states.HandleInput(g.input); err != nil {
			return fmt.Errorf("input: %w", err)
		}

		// 2. Update
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update: %w", err)
		}

		// 3. Render
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) handleWindowEvents() {
	if w, h, ok := g.input.Resized(); ok {
		g.renderer.Resize(w, h)
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_F11) {
		g.window.ToggleFullscreen()
		g.renderer.Resize(g.window.Size())
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.states != nil {
		if err := g.states.Close(); err != nil {
			g.log.Warn("state exit failed", zap.Error(err))
		}
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
