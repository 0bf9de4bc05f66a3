// Package game implements the main loop: events, fixed-tick simulation and
// rendering.
package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/assets"
	"github.com/Faultbox/yarpgp/internal/config"
	"github.com/Faultbox/yarpgp/internal/engine/audio"
	"github.com/Faultbox/yarpgp/internal/engine/camera"
	"github.com/Faultbox/yarpgp/internal/engine/debug"
	"github.com/Faultbox/yarpgp/internal/engine/input"
	"github.com/Faultbox/yarpgp/internal/engine/renderer"
	"github.com/Faultbox/yarpgp/internal/engine/window"
	"github.com/Faultbox/yarpgp/internal/game/world"
	"github.com/Faultbox/yarpgp/internal/logger"
)

// Title is the window title.
const Title = "YARPGP"

// AtlasTexture is the texture name of the character sheet.
const AtlasTexture = "atlas"

// Overlay colours.
var (
	GridColor   = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	BoundsColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}
)

// Game is the main game instance.
type Game struct {
	config    *config.Config
	running   bool
	window    *window.Window
	renderer  *renderer.Renderer
	input     *input.Input
	assets    *assets.Manager
	audio     *audio.Manager
	world     *world.World
	clock     *Clock
	footsteps Footsteps
	overlay   debug.Overlay
	shots     *debug.ScreenshotCapture
	log       *zap.Logger
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Duration("tick", cfg.Simulation.Tick),
	)

	var err error
	g.assets, err = assets.NewDirManager(cfg.Assets.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open assets: %w", err)
	}

	g.world, err = NewWorld(cfg, g.assets)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:         Title,
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		LogicalWidth:  cfg.Graphics.LogicalWidth,
		LogicalHeight: cfg.Graphics.LogicalHeight,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	cam := camera.New(cfg.Graphics.LogicalWidth, cfg.Graphics.LogicalHeight)
	if tm := g.world.TileMap(); tm != nil {
		cam.Bounds = image.Rectangle{Max: tm.PixelSize()}
	}
	g.renderer = renderer.New(g.window.Renderer(), cam)

	if err := g.uploadTextures(); err != nil {
		g.Close()
		return nil, err
	}

	g.input = input.New()
	g.clock = NewClock(cfg.Simulation.Tick)
	g.overlay = debug.Overlay{Grid: cfg.Debug.Grid, Bounds: cfg.Debug.Bounds}
	g.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "yarpgp")
	g.initAudio()

	g.log.Info("game initialized successfully", zap.Int("entities", g.world.Count()))
	return g, nil
}

// NewWorld builds the demo scene and loads the configured tile map.
func NewWorld(cfg *config.Config, am *assets.Manager) (*world.World, error) {
	w := world.New()

	if cfg.Assets.Map != "" && am != nil && am.FS() != nil {
		tm, err := world.LoadTileMap(am.FS(), cfg.Assets.Map)
		if err != nil {
			return nil, fmt.Errorf("failed to load map: %w", err)
		}
		w.SetTileMap(tm)
	}

	if err := world.PopulateDemo(w, world.DemoOptionsFromConfig(cfg)); err != nil {
		return nil, fmt.Errorf("failed to populate scene: %w", err)
	}
	return w, nil
}

func (g *Game) uploadTextures() error {
	atlas, err := g.assets.LoadImage(g.config.Assets.Atlas)
	switch {
	case errors.Is(err, assets.ErrNotFound):
		g.log.Warn("atlas not found, using placeholder", zap.String("atlas", g.config.Assets.Atlas))
		atlas = PlaceholderSheet(g.config.Assets.FrameWidth, g.config.Assets.FrameHeight)
	case err != nil:
		return fmt.Errorf("failed to load atlas: %w", err)
	}
	if err := g.renderer.AddTexture(AtlasTexture, atlas, true); err != nil {
		return err
	}

	if tm := g.world.TileMap(); tm != nil {
		for _, name := range tm.Atlases {
			img, err := g.assets.LoadImage(name)
			if errors.Is(err, assets.ErrNotFound) {
				g.log.Warn("tileset not found, layer cells using it are skipped", zap.String("tileset", name))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to load tileset: %w", err)
			}
			if err := g.renderer.AddTexture(name, img, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// initAudio opens the speaker and loads the footstep sound. Failures leave
// the game silent.
func (g *Game) initAudio() {
	if !g.config.Audio.Enabled {
		return
	}

	g.audio = audio.New()
	g.audio.SetVolume(g.config.Audio.Volume)
	if err := g.audio.Init(); err != nil {
		g.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		g.audio = nil
		return
	}

	data, err := g.assets.Load(g.config.Audio.Footstep)
	if err != nil {
		g.log.Warn("footstep sound not loaded", zap.String("path", g.config.Audio.Footstep), zap.Error(err))
		return
	}
	if err := g.audio.Load(FootstepSound, bytes.NewReader(data)); err != nil {
		g.log.Warn("footstep sound not decoded", zap.Error(err))
	}
}

// Run starts the main game loop: process events, run the ticks that are
// due, render, then sleep until the next tick.
func (g *Game) Run() error {
	g.running = true
	g.log.Info("starting game loop")

	frameCount := 0
	fpsTimer := time.Now()
	g.clock.Start(time.Now())

	for g.running {
		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}

		keys := g.input.Bindings()
		if g.input.IsKeyPressed(keys.ToggleGrid) {
			g.overlay.Grid = !g.overlay.Grid
		}
		if g.input.IsKeyPressed(keys.ToggleBounds) {
			g.overlay.Bounds = !g.overlay.Bounds
		}

		// 2. Update game state
		intents, run := g.input.Intents()
		ticks := g.clock.Advance(time.Now())
		if ticks > 1 {
			g.log.Debug("tick overrun", zap.Int("ticks", ticks), logger.Tick(g.world.Ticks()))
		}
		for i := 0; i < ticks; i++ {
			g.world.Tick(g.clock.Step(), intents, run)
			g.playFootsteps()
		}

		// 3. Render
		if err := g.render(g.input.IsKeyPressed(keys.Screenshot)); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Wait for the next tick
		sdl.Delay(uint32(g.clock.UntilNext(time.Now()).Milliseconds()))

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Uint64("ticks", g.world.Ticks()))
			g.window.SetTitle(fmt.Sprintf("%s - %d FPS", Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
}

// playFootsteps plays the footstep sound when the player lands a step.
func (g *Game) playFootsteps() {
	p, _ := g.world.Player()
	if !g.footsteps.Landed(p) || g.audio == nil || !g.audio.Has(FootstepSound) {
		return
	}
	if err := g.audio.Play(FootstepSound); err != nil {
		g.log.Debug("footstep not played", zap.Error(err))
	}
}

// render draws the current frame, saving it first when capture is set.
func (g *Game) render(capture bool) error {
	if err := g.renderer.Begin(); err != nil {
		return err
	}

	cam := g.renderer.Camera()
	if p, ok := g.world.Player(); ok {
		cam.Follow(p.Position)
	}
	if err := g.renderer.Draw(Sprites(g.world, AtlasTexture)); err != nil {
		return err
	}

	if g.overlay.Grid {
		if err := g.renderer.DrawLines(Grid(g.world, cam.ViewRect()), GridColor); err != nil {
			return err
		}
	}
	if g.overlay.Bounds {
		if err := g.renderer.DrawRects(Outlines(g.world), BoundsColor); err != nil {
			return err
		}
	}

	if capture {
		g.screenshot()
	}

	g.renderer.End()
	return nil
}

func (g *Game) screenshot() {
	img, err := g.renderer.ReadPixels()
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := g.shots.CaptureFromImage(img)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Ticks returns the number of simulation ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.world.Ticks()
}
