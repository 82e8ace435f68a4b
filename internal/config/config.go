// Package config handles scene configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// DefaultMessage is the holiday greeting scrolled across the bottom strip.
const DefaultMessage = "Happy holidays from Katie and Ayo! We hope that your holidays are filled with lots of joy and laughter!"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Scene    SceneConfig    `yaml:"scene"`
	Scroller ScrollerConfig `yaml:"scroller"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDir string `yaml:"asset_dir"` // Root of music and other assets
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float32 `yaml:"master_volume"`
	MusicVolume  float32 `yaml:"music_volume"`
	Muted        bool    `yaml:"muted"`
	MusicFile    string  `yaml:"music_file"` // Relative to the asset dir
}

// SceneConfig holds simulation settings.
type SceneConfig struct {
	Seed             uint64  `yaml:"seed"` // 0 seeds from the clock
	SnowmanCount     int     `yaml:"snowman_count"`
	RareSnowmanCount int     `yaml:"rare_snowman_count"`
	RareChance       float64 `yaml:"rare_chance"`
	WorldScale       float32 `yaml:"world_scale"`
}

// ScrollerConfig holds the message banner settings.
type ScrollerConfig struct {
	Message        string        `yaml:"message"`
	FontSize       float64       `yaml:"font_size"` // px
	ScrollStep     int           `yaml:"scroll_step"`
	LeadIn         time.Duration `yaml:"lead_in"`
	FadeIn         time.Duration `yaml:"fade_in"`
	UpdateInterval int           `yaml:"update_interval"` // frames between redraws
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			Muted:        false,
			MusicFile:    "music/holiday.mp3",
		},
		Scene: SceneConfig{
			SnowmanCount:     15,
			RareSnowmanCount: 100,
			RareChance:       0.001,
			WorldScale:       0.03,
		},
		Scroller: ScrollerConfig{
			Message:        DefaultMessage,
			FontSize:       20,
			ScrollStep:     4,
			LeadIn:         4 * time.Second,
			FadeIn:         3 * time.Second,
			UpdateInterval: 2,
		},
		Data: DataConfig{
			AssetDir: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	case c.Scene.WorldScale <= 0:
		return fmt.Errorf("scene: world_scale must be positive, got %v", c.Scene.WorldScale)
	case c.Scene.SnowmanCount < 0 || c.Scene.RareSnowmanCount < 0:
		return fmt.Errorf("scene: snowman counts must not be negative")
	case c.Scene.RareChance < 0 || c.Scene.RareChance > 1:
		return fmt.Errorf("scene: rare_chance %v outside [0, 1]", c.Scene.RareChance)
	case c.Scroller.FontSize <= 0:
		return fmt.Errorf("scroller: font_size must be positive, got %v", c.Scroller.FontSize)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1,
		c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1:
		return fmt.Errorf("audio: volumes must be within [0, 1]")
	}
	return nil
}
