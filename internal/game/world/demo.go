package world

import (
	"fmt"
	"image"
	"time"

	"github.com/Faultbox/yarpgp/internal/config"
	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/entity"
	"github.com/Faultbox/yarpgp/internal/game/script"
	"github.com/Faultbox/yarpgp/pkg/math"
)

// DemoOptions tunes the demo scene.
type DemoOptions struct {
	FrameWidth    int
	FrameHeight   int
	WalkSpeed     float64
	RunMultiplier float64
	ClipDuration  float64
	ScaleFactor   int
}

// DemoOptionsFromConfig builds options from the loaded config.
func DemoOptionsFromConfig(cfg *config.Config) DemoOptions {
	return DemoOptions{
		FrameWidth:    cfg.Assets.FrameWidth,
		FrameHeight:   cfg.Assets.FrameHeight,
		WalkSpeed:     cfg.Simulation.WalkSpeed,
		RunMultiplier: cfg.Simulation.RunMultiplier,
		ClipDuration:  cfg.Simulation.ClipDuration,
		ScaleFactor:   cfg.Simulation.ScaleFactor,
	}
}

// EastPatrol turns east, walks eight units, rests and starts over.
func EastPatrol() script.Program {
	return script.Program{
		script.Turn(character.East),
		script.Move(character.East, 8),
		script.Wait(1500 * time.Millisecond),
		script.Repeat(),
	}
}

// SquarePatrol walks a two-unit square clockwise from its start, looking
// around at each lap.
func SquarePatrol() script.Program {
	return script.Program{
		script.Move(character.North, 2),
		script.Move(character.East, 2),
		script.Move(character.South, 2),
		script.Move(character.West, 2),
		script.Turn(character.South),
		script.Wait(500 * time.Millisecond),
		script.Turn(character.West),
		script.Wait(500 * time.Millisecond),
		script.Repeat(),
	}
}

type demoActor struct {
	name    string
	kind    entity.Kind
	at      math.Vec2
	program script.Program
}

// PopulateDemo spawns a player and two scripted NPCs. Spawn points named
// after the actors in the world's tile map override the built-in positions.
func PopulateDemo(w *World, opts DemoOptions) error {
	actors := []demoActor{
		{name: "player", kind: entity.KindPlayer, at: math.Vec2{X: 224, Y: 128}},
		{name: "guard", kind: entity.KindNPC, at: math.Vec2{X: 64, Y: 48}, program: EastPatrol()},
		{name: "sentry", kind: entity.KindNPC, at: math.Vec2{X: 352, Y: 208}, program: SquarePatrol()},
	}

	for _, a := range actors {
		anim, err := entity.CharacterSheet(opts.FrameWidth, opts.FrameHeight, image.Point{})
		if err != nil {
			return fmt.Errorf("demo %s: %w", a.name, err)
		}

		e := entity.New(0, a.kind, a.name, anim)
		e.Tune(opts.WalkSpeed, opts.RunMultiplier, opts.ClipDuration)

		pos := a.at
		if tm := w.TileMap(); tm != nil {
			if p, ok := tm.Spawn(a.name); ok {
				pos = p
			}
		}
		e.SetPosition(pos.X, pos.Y)

		if a.program != nil {
			if err := e.AttachScript(a.program, opts.ScaleFactor); err != nil {
				return fmt.Errorf("demo %s: %w", a.name, err)
			}
		}
		w.Spawn(e)
	}
	return nil
}
