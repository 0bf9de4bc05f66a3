// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/yarpgp/internal/logger"
)

// Config holds all runtime settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Assets     AssetsConfig     `yaml:"assets"`
	Audio      AudioConfig      `yaml:"audio"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	LogicalWidth  int  `yaml:"logical_width"`  // Render target size, scaled to the window
	LogicalHeight int  `yaml:"logical_height"` // Render target size, scaled to the window
	Fullscreen    bool `yaml:"fullscreen"`
}

// SimulationConfig holds the fixed-step simulation parameters.
type SimulationConfig struct {
	Tick          time.Duration `yaml:"tick"`
	WalkSpeed     float64       `yaml:"walk_speed"`     // World units per second
	RunMultiplier float64       `yaml:"run_multiplier"` // Speed multiplier while run is held
	ClipDuration  float64       `yaml:"clip_duration"`  // Seconds for one pass of a walk clip
	ScaleFactor   int           `yaml:"scale_factor"`   // Movement ticks per script distance unit
}

// AssetsConfig holds content locations.
type AssetsConfig struct {
	Root        string `yaml:"root"`
	Atlas       string `yaml:"atlas"` // Character sprite sheet, relative to Root
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Map         string `yaml:"map"` // TMX background, relative to Root; empty disables it
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"`   // 0.0 to 1.0
	Footstep string  `yaml:"footstep"` // WAV played on player strides, relative to Assets.Root
}

// DebugConfig holds developer overlay settings.
type DebugConfig struct {
	Grid          bool   `yaml:"grid"`           // Tile grid overlay at startup
	Bounds        bool   `yaml:"bounds"`         // Entity bounding boxes at startup
	ScreenshotDir string `yaml:"screenshot_dir"` // Where F12 screenshots are written
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
			Width:         960,
			Height:        540,
			LogicalWidth:  480,
			LogicalHeight: 270,
			Fullscreen:    false,
		},
		Simulation: SimulationConfig{
			Tick:          33 * time.Millisecond,
			WalkSpeed:     30,
			RunMultiplier: 2,
			ClipDuration:  0.6,
			ScaleFactor:   16,
		},
		Assets: AssetsConfig{
			Root:        "assets",
			Atlas:       "sprites/hero.png",
			FrameWidth:  16,
			FrameHeight: 24,
			Map:         "maps/town.tmx",
		},
		Audio: AudioConfig{
			Enabled:  true,
			Volume:   0.8,
			Footstep: "sounds/step.wav",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation divides by or steps with.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.Tick <= 0 {
		errs = append(errs, fmt.Errorf("%w: simulation.tick must be positive, got %v", ErrInvalidConfig, c.Simulation.Tick))
	}
	if c.Simulation.ScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("%w: simulation.scale_factor must be positive, got %d", ErrInvalidConfig, c.Simulation.ScaleFactor))
	}
	if c.Simulation.WalkSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: simulation.walk_speed must not be negative, got %g", ErrInvalidConfig, c.Simulation.WalkSpeed))
	}
	if c.Simulation.RunMultiplier < 1 {
		errs = append(errs, fmt.Errorf("%w: simulation.run_multiplier must be >= 1, got %g", ErrInvalidConfig, c.Simulation.RunMultiplier))
	}
	if c.Assets.FrameWidth <= 0 || c.Assets.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: assets frame size must be positive, got %dx%d", ErrInvalidConfig, c.Assets.FrameWidth, c.Assets.FrameHeight))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
