package world

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/yarpgp/internal/config"
	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/entity"
	"github.com/Faultbox/yarpgp/internal/game/script"
)

const tick = 33 * time.Millisecond

func newActor(t *testing.T, kind entity.Kind, name string) *entity.Entity {
	t.Helper()
	anim, err := entity.CharacterSheet(16, 24, image.Point{})
	require.NoError(t, err)
	return entity.New(0, kind, name, anim)
}

func demoWorld(t *testing.T) *World {
	t.Helper()
	w := New()
	require.NoError(t, PopulateDemo(w, DemoOptionsFromConfig(config.Default())))
	return w
}

func TestSpawnAssignsIDs(t *testing.T) {
	w := New()
	a := newActor(t, entity.KindNPC, "a")
	b := newActor(t, entity.KindPlayer, "b")
	c := newActor(t, entity.KindNPC, "c")
	c.ID = 10

	w.Spawn(a)
	w.Spawn(c)
	w.Spawn(b)

	assert.Equal(t, uint32(1), a.ID)
	assert.Equal(t, uint32(10), c.ID)
	assert.Equal(t, uint32(11), b.ID)
	assert.Equal(t, 3, w.Count())

	names := []string{}
	for _, e := range w.Entities() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "c", "b"}, names)

	p, ok := w.Player()
	require.True(t, ok)
	assert.Same(t, b, p)

	found, ok := w.Find("c")
	require.True(t, ok)
	assert.Same(t, c, found)
	_, ok = w.Find("nobody")
	assert.False(t, ok)
}

func TestDespawn(t *testing.T) {
	w := New()
	w.Spawn(newActor(t, entity.KindNPC, "a"))
	w.Spawn(newActor(t, entity.KindPlayer, "b"))

	assert.True(t, w.Despawn(2))
	assert.False(t, w.Despawn(2))
	assert.Equal(t, 1, w.Count())

	_, ok := w.Player()
	assert.False(t, ok)
}

func TestTickDrivesPlayerFromIntents(t *testing.T) {
	w := New()
	p := newActor(t, entity.KindPlayer, "player")
	w.Spawn(p)

	w.Tick(tick, character.Intents{Down: true}, false)
	assert.Equal(t, character.South, p.Facing)
	assert.InDelta(t, p.Speed*tick.Seconds(), p.Position.Y, 1e-9)
	assert.Equal(t, "walk_south", p.Anim.ClipName())

	w.Tick(tick, character.Intents{}, false)
	assert.True(t, p.Velocity.IsZero())
	assert.Equal(t, "face_south", p.Anim.ClipName())
	assert.Equal(t, uint64(2), w.Ticks())
}

func TestTickStepsScriptsBeforeIntegration(t *testing.T) {
	w := New()
	npc := newActor(t, entity.KindNPC, "npc")
	require.NoError(t, npc.AttachScript(script.Program{script.Move(character.West, 1)}, 4))
	w.Spawn(npc)

	// The decode tick already moves.
	w.Tick(tick, character.Intents{}, false)
	assert.InDelta(t, -npc.Speed*tick.Seconds(), npc.Position.X, 1e-9)

	// Player intents never reach NPCs.
	w.Tick(tick, character.Intents{Up: true}, false)
	assert.Equal(t, character.West, npc.Facing)
	assert.Zero(t, npc.Position.Y)
}

func TestDemoGuardPatrol(t *testing.T) {
	w := demoWorld(t)
	guard, ok := w.Find("guard")
	require.True(t, ok)
	start := guard.Position

	moving := 0
	prev := guard.Position.X
	for i := 0; i < 177; i++ {
		w.Tick(tick, character.Intents{}, false)
		if guard.Position.X > prev {
			moving++
		}
		assert.Equal(t, start.Y, guard.Position.Y)
		prev = guard.Position.X
	}

	assert.Equal(t, 128, moving)
	assert.Equal(t, 0, guard.Script.IP(), "the patrol repeats after one cycle")
	assert.InDelta(t, start.X+128*guard.Speed*tick.Seconds(), guard.Position.X, 1e-6)
}

func TestDemoIsDeterministic(t *testing.T) {
	w1 := demoWorld(t)
	w2 := demoWorld(t)

	intents := []character.Intents{{Up: true}, {Right: true, Down: true}, {}, {Left: true}}
	for i := 0; i < 600; i++ {
		in := intents[(i/40)%len(intents)]
		w1.Tick(tick, in, i%3 == 0)
		w2.Tick(tick, in, i%3 == 0)
	}

	e1, e2 := w1.Entities(), w2.Entities()
	require.Len(t, e2, len(e1))
	for i := range e1 {
		assert.Equal(t, e1[i].Position, e2[i].Position, e1[i].Name)
		assert.Equal(t, e1[i].Facing, e2[i].Facing, e1[i].Name)
		assert.Equal(t, e1[i].Anim.Frame(), e2[i].Anim.Frame(), e1[i].Name)
	}
}

func TestHaltedScriptIsolated(t *testing.T) {
	w := demoWorld(t)
	broken := newActor(t, entity.KindNPC, "broken")
	require.NoError(t, broken.AttachScript(script.Program{{Op: 42}}, 16))
	w.Spawn(broken)

	guard, _ := w.Find("guard")
	for i := 0; i < 10; i++ {
		w.Tick(tick, character.Intents{}, false)
	}

	assert.True(t, broken.Script.Halted())
	assert.ErrorIs(t, broken.Script.Err(), script.ErrUnknownOpcode)
	assert.False(t, guard.Script.Halted())
	assert.Greater(t, guard.Script.State().Moved, 0)
}

func TestResetScripts(t *testing.T) {
	w := demoWorld(t)
	for i := 0; i < 50; i++ {
		w.Tick(tick, character.Intents{}, false)
	}

	w.ResetScripts()
	for _, e := range w.Entities() {
		if e.Script != nil {
			assert.Equal(t, script.State{}, e.Script.State(), e.Name)
		}
	}
}

func TestPopulateDemoRejectsBadFrameSize(t *testing.T) {
	opts := DemoOptionsFromConfig(config.Default())
	opts.FrameWidth = 0
	assert.Error(t, PopulateDemo(New(), opts))
}
