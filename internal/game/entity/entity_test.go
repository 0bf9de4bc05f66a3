package entity

import (
	"image"
	gomath "math"
	"testing"
	"time"

	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/script"
)

const eps = 1e-9

func newTestEntity(t *testing.T, kind Kind) *Entity {
	t.Helper()
	anim, err := CharacterSheet(16, 24, image.Point{})
	if err != nil {
		t.Fatalf("CharacterSheet: %v", err)
	}
	return New(1, kind, "hero", anim)
}

func TestNewEntity(t *testing.T) {
	e := newTestEntity(t, KindPlayer)

	if !e.Active || !e.Visible {
		t.Errorf("expected active and visible, got active=%v visible=%v", e.Active, e.Visible)
	}
	if e.Facing != character.South {
		t.Errorf("expected to face south, got %s", e.Facing)
	}
	if e.Anim.ClipName() != "face_south" {
		t.Errorf("expected face_south clip, got %q", e.Anim.ClipName())
	}
	if !e.Velocity.IsZero() {
		t.Errorf("expected zero velocity, got %+v", e.Velocity)
	}
}

func TestSteerWalksAndStops(t *testing.T) {
	e := newTestEntity(t, KindNPC)

	e.Steer(character.East, false)
	if e.Velocity.X != e.Speed || e.Velocity.Y != 0 {
		t.Errorf("expected velocity (%v, 0), got %+v", e.Speed, e.Velocity)
	}
	if e.Anim.ClipName() != "walk_east" {
		t.Errorf("expected walk_east clip, got %q", e.Anim.ClipName())
	}
	if !e.Moving {
		t.Error("expected entity to be moving")
	}

	e.Steer(character.East, true)
	if !e.Velocity.IsZero() {
		t.Errorf("expected zero velocity after stop, got %+v", e.Velocity)
	}
	if e.Anim.ClipName() != "face_east" {
		t.Errorf("expected face_east clip, got %q", e.Anim.ClipName())
	}
	if e.Facing != character.East {
		t.Errorf("expected to face east, got %s", e.Facing)
	}
}

func TestSteerKeepsWalkCycle(t *testing.T) {
	e := newTestEntity(t, KindNPC)
	e.Steer(character.North, false)

	// 0.6s over 4 frames; 0.2s lands on frame 1.
	e.Update(0.2)
	if e.Anim.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", e.Anim.Frame())
	}

	e.Steer(character.North, false)
	if e.Anim.Frame() != 1 {
		t.Errorf("steering the same way restarted the cycle at frame %d", e.Anim.Frame())
	}

	e.Steer(character.West, false)
	if e.Anim.Frame() != 0 {
		t.Errorf("expected a new clip to start at frame 0, got %d", e.Anim.Frame())
	}
}

func TestSteerIgnoresInvalidDirection(t *testing.T) {
	e := newTestEntity(t, KindNPC)
	e.Steer(character.East, false)

	e.Steer(character.NoDirection, true)
	if e.Facing != character.East || !e.Moving {
		t.Errorf("invalid direction changed state: facing=%s moving=%v", e.Facing, e.Moving)
	}
}

func TestApplyIntents(t *testing.T) {
	e := newTestEntity(t, KindPlayer)

	e.ApplyIntents(character.Intents{Up: true, Left: true}, false)
	if e.Facing != character.NorthWest {
		t.Fatalf("expected northwest, got %s", e.Facing)
	}
	want := e.Speed * character.Cos45
	if gomath.Abs(e.Velocity.X+want) > eps || gomath.Abs(e.Velocity.Y+want) > eps {
		t.Errorf("expected velocity (%v, %v), got %+v", -want, -want, e.Velocity)
	}

	e.ApplyIntents(character.Intents{}, false)
	if e.Facing != character.NorthWest {
		t.Errorf("expected to keep facing northwest, got %s", e.Facing)
	}
	if !e.Velocity.IsZero() || e.Moving {
		t.Errorf("expected stop, got velocity %+v moving=%v", e.Velocity, e.Moving)
	}
	if e.Anim.ClipName() != "face_northwest" {
		t.Errorf("expected face_northwest, got %q", e.Anim.ClipName())
	}
}

func TestRunModifier(t *testing.T) {
	e := newTestEntity(t, KindPlayer)

	e.ApplyIntents(character.Intents{Right: true}, false)
	walkFrame := e.Anim.FrameDuration()

	e.ApplyIntents(character.Intents{Right: true}, true)
	if !e.Running() {
		t.Error("expected running")
	}
	if gomath.Abs(e.Velocity.X-e.Speed*e.RunMultiplier) > eps {
		t.Errorf("expected run velocity %v, got %v", e.Speed*e.RunMultiplier, e.Velocity.X)
	}
	if gomath.Abs(e.Anim.FrameDuration()-walkFrame/e.RunMultiplier) > eps {
		t.Errorf("expected frame duration %v, got %v", walkFrame/e.RunMultiplier, e.Anim.FrameDuration())
	}
}

func TestUpdateIntegratesOnlyWhenActive(t *testing.T) {
	e := newTestEntity(t, KindNPC)
	e.SetPosition(10, 20)
	e.Steer(character.South, false)

	e.Update(0.5)
	if e.Position.X != 10 || gomath.Abs(e.Position.Y-(20+e.Speed*0.5)) > eps {
		t.Errorf("unexpected position %+v", e.Position)
	}

	e.Active = false
	before := e.Position
	frame := e.Anim.Frame()
	e.Update(0.3)
	if e.Position != before {
		t.Errorf("inactive entity moved from %+v to %+v", before, e.Position)
	}
	if e.Anim.Frame() == frame {
		t.Error("animation should keep playing while inactive")
	}
}

func TestAttachScript(t *testing.T) {
	e := newTestEntity(t, KindNPC)
	prog := script.Program{
		script.Turn(character.East),
		script.Move(character.East, 1),
		script.Repeat(),
	}
	if err := e.AttachScript(prog, 2); err != nil {
		t.Fatalf("AttachScript: %v", err)
	}

	dt := 100 * time.Millisecond
	for i := 0; i < 4; i++ {
		e.Script.Step(dt)
		e.Update(dt.Seconds())
	}

	// turn, two moving ticks, stop
	want := 2 * e.Speed * dt.Seconds()
	if gomath.Abs(e.Position.X-want) > eps {
		t.Errorf("expected x=%v, got %v", want, e.Position.X)
	}
	if e.Moving {
		t.Error("expected the move to have finished")
	}

	if err := e.AttachScript(nil, 2); err == nil {
		t.Error("expected an error for an empty program")
	}
}

func TestCurrentFrameRectAndBounds(t *testing.T) {
	e := newTestEntity(t, KindPlayer)
	e.SetPosition(40.7, 12.2)

	rect, ok := e.CurrentFrameRect()
	if !ok {
		t.Fatal("expected a frame rect")
	}
	// face_south: row 4, column 0.
	if want := image.Rect(0, 96, 16, 120); rect != want {
		t.Errorf("rect = %v, want %v", rect, want)
	}
	if want := image.Rect(40, 12, 56, 36); e.Bounds() != want {
		t.Errorf("bounds = %v, want %v", e.Bounds(), want)
	}

	bare := New(2, KindNPC, "ghost", nil)
	if _, ok := bare.CurrentFrameRect(); ok {
		t.Error("expected no frame rect without an animation")
	}
}

func TestStriding(t *testing.T) {
	e := newTestEntity(t, KindPlayer)
	if e.Striding() {
		t.Fatal("standing entity should not be striding")
	}

	// DefaultClipDuration over 4 frames is 0.15s per frame
	e.Steer(character.East, false)
	want := []bool{true, false, true, false, true}
	for i, w := range want {
		if got := e.Striding(); got != w {
			t.Errorf("frame %d: Striding() = %v, want %v", i, got, w)
		}
		e.Update(0.15 + eps)
	}

	e.Steer(character.East, true)
	if e.Striding() {
		t.Error("stopped entity should not be striding")
	}
}
