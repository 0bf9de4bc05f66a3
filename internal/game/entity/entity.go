// Package entity implements game entities (the player and scripted NPCs).
package entity

import (
	"image"

	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/script"
	"github.com/Faultbox/yarpgp/pkg/math"
)

// Kind represents who drives an entity.
type Kind uint8

const (
	KindPlayer Kind = iota // Driven by live input intents
	KindNPC                // Driven by a script interpreter
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	default:
		return "unknown"
	}
}

// Default tuning applied by New.
const (
	DefaultSpeed         = 30.0 // Pixels per second
	DefaultClipDuration  = 0.6  // Seconds for one walk cycle
	DefaultRunMultiplier = 2.0
)

// Entity is a positioned, animated actor in the world.
type Entity struct {
	ID   uint32
	Kind Kind
	Name string

	// Movement
	Position math.Vec2
	Velocity math.Vec2
	Facing   character.Direction
	Moving   bool

	// Tuning
	Speed         float64 // Walk speed in pixels per second
	ClipDuration  float64 // Walk cycle length in seconds
	RunMultiplier float64 // Applied to speed, divides clip duration

	// Flags
	Active  bool // Position integrates only while active
	Visible bool // Drawn only while visible

	Anim   *character.Animation
	Script *script.Interpreter

	running bool
}

// New creates an active, visible entity facing south and showing its face clip.
func New(id uint32, kind Kind, name string, anim *character.Animation) *Entity {
	e := &Entity{
		ID:            id,
		Kind:          kind,
		Name:          name,
		Facing:        character.South,
		Speed:         DefaultSpeed,
		ClipDuration:  DefaultClipDuration,
		RunMultiplier: DefaultRunMultiplier,
		Active:        true,
		Visible:       true,
		Anim:          anim,
	}
	e.playClip(FaceClip(e.Facing))
	return e
}

// SetPosition places the entity at (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.Position = math.Vec2{X: x, Y: y}
}

// Tune sets walk speed, run multiplier and walk cycle length, and refreshes
// the current clip's timing.
func (e *Entity) Tune(speed, runMultiplier, clipDuration float64) {
	e.Speed = speed
	e.RunMultiplier = runMultiplier
	e.ClipDuration = clipDuration
	if e.Anim != nil {
		e.Anim.SetDuration(e.clipDuration())
	}
}

// SetRunning toggles the run modifier. It takes effect on the next Steer.
func (e *Entity) SetRunning(running bool) {
	e.running = running
}

// Running reports whether the run modifier is on.
func (e *Entity) Running() bool {
	return e.running
}

// AttachScript builds an interpreter for program that steers this entity.
func (e *Entity) AttachScript(program script.Program, scaleFactor int) error {
	in, err := script.New(program, e, script.Options{
		ScaleFactor: scaleFactor,
		Name:        e.Name,
	})
	if err != nil {
		return err
	}
	e.Script = in
	return nil
}

// Steer implements script.Actor. With stopped set the entity halts facing
// dir; otherwise it walks toward dir at its current speed.
func (e *Entity) Steer(dir character.Direction, stopped bool) {
	if !dir.Valid() {
		return
	}

	e.Facing = dir
	if stopped {
		e.Moving = false
		e.Velocity = math.Vec2{}
		e.playClip(FaceClip(dir))
		return
	}

	e.Moving = true
	e.Velocity = character.Velocity(dir, e.speed())
	e.playClip(WalkClip(dir))
}

// ApplyIntents resolves live directional input. No input stops the entity
// facing its last direction.
func (e *Entity) ApplyIntents(in character.Intents, run bool) {
	e.running = run

	dir, _ := character.Resolve(in, e.speed())
	if dir == character.NoDirection {
		e.Steer(e.Facing, true)
		return
	}
	e.Steer(dir, false)
}

// playClip selects name only when it differs from the current clip so an
// ongoing walk cycle keeps its frame. The cycle length is refreshed every call.
func (e *Entity) playClip(name string) {
	if e.Anim == nil {
		return
	}
	if e.Anim.ClipName() != name {
		e.Anim.SelectClip(name)
	}
	e.Anim.SetDuration(e.clipDuration())
}

func (e *Entity) speed() float64 {
	if e.running && e.RunMultiplier > 0 {
		return e.Speed * e.RunMultiplier
	}
	return e.Speed
}

func (e *Entity) clipDuration() float64 {
	if e.running && e.RunMultiplier > 0 {
		return e.ClipDuration / e.RunMultiplier
	}
	return e.ClipDuration
}

// Update advances the animation and, while active, integrates the position.
func (e *Entity) Update(dt float64) {
	if e.Anim != nil {
		e.Anim.Update(dt)
	}
	if e.Active {
		e.Position = e.Position.Add(e.Velocity.Scale(dt))
	}
}

// Striding reports whether the entity is walking and its walk cycle shows a
// step frame.
func (e *Entity) Striding() bool {
	return e.Moving && e.Anim != nil && e.Anim.ClipName() == WalkClip(e.Facing) && StrideFrame(e.Anim.Frame())
}

// CurrentFrameRect returns the atlas source rectangle to draw.
func (e *Entity) CurrentFrameRect() (image.Rectangle, bool) {
	if e.Anim == nil {
		return image.Rectangle{}, false
	}
	return e.Anim.CurrentFrameRect()
}

// Bounds returns the on-screen rectangle the current frame covers, anchored
// at the entity position (top-left).
func (e *Entity) Bounds() image.Rectangle {
	if e.Anim == nil {
		return image.Rectangle{}
	}
	size := e.Anim.FrameSize()
	origin := image.Pt(int(e.Position.X), int(e.Position.Y))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}
