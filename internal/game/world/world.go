// Package world owns the entities of a scene and runs the per-tick update.
package world

import (
	"sort"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/game/entity"
	"github.com/Faultbox/yarpgp/internal/logger"
)

// ActorData attaches a game entity to an ECS entry.
type ActorData struct {
	Entity *entity.Entity
}

// Actor is the component every world entry carries.
var Actor = donburi.NewComponentType[ActorData]()

// Tags select who drives an actor.
var (
	PlayerTag = donburi.NewTag().SetName("Player")
	NPCTag    = donburi.NewTag().SetName("NPC")
)

var (
	actorQuery = donburi.NewQuery(filter.Contains(Actor))
	npcQuery   = donburi.NewQuery(filter.Contains(Actor, NPCTag))
)

// World holds the scene's entities and the optional tile map background.
type World struct {
	ecs    donburi.World
	nextID uint32
	tiles  *TileMap
	ticks  uint64
	log    *zap.Logger
}

// New creates an empty world.
func New() *World {
	return &World{
		ecs:    donburi.NewWorld(),
		nextID: 1,
		log:    logger.Named("world"),
	}
}

// Spawn adds e to the world, assigning an ID when e has none.
func (w *World) Spawn(e *entity.Entity) donburi.Entity {
	if e.ID == 0 {
		e.ID = w.nextID
	}
	if e.ID >= w.nextID {
		w.nextID = e.ID + 1
	}

	tag := NPCTag
	if e.Kind == entity.KindPlayer {
		tag = PlayerTag
	}

	id := w.ecs.Create(Actor, tag)
	Actor.Set(w.ecs.Entry(id), &ActorData{Entity: e})

	w.log.Debug("spawned entity",
		zap.Uint32("id", e.ID),
		zap.String("name", e.Name),
		zap.Stringer("kind", e.Kind),
	)
	return id
}

// Despawn removes the entity with the given game ID.
func (w *World) Despawn(id uint32) bool {
	var found donburi.Entity
	ok := false
	actorQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if !ok && Actor.Get(entry).Entity.ID == id {
			found, ok = entry.Entity(), true
		}
	})
	if ok {
		w.ecs.Remove(found)
	}
	return ok
}

// Player returns the player entity, if one was spawned.
func (w *World) Player() (*entity.Entity, bool) {
	entry, ok := PlayerTag.First(w.ecs)
	if !ok {
		return nil, false
	}
	return Actor.Get(entry).Entity, true
}

// Find returns the entity with the given name.
func (w *World) Find(name string) (*entity.Entity, bool) {
	for _, e := range w.Entities() {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Entities returns all entities ordered by ID.
func (w *World) Entities() []*entity.Entity {
	out := make([]*entity.Entity, 0, w.ecs.Len())
	actorQuery.Each(w.ecs, func(entry *donburi.Entry) {
		out = append(out, Actor.Get(entry).Entity)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of entities.
func (w *World) Count() int {
	return actorQuery.Count(w.ecs)
}

// SetTileMap sets the background map.
func (w *World) SetTileMap(m *TileMap) {
	w.tiles = m
}

// TileMap returns the background map, or nil.
func (w *World) TileMap() *TileMap {
	return w.tiles
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Tick advances the simulation by dt: NPC scripts step first, then the
// player's intents resolve, then every entity integrates and animates.
func (w *World) Tick(dt time.Duration, in character.Intents, run bool) {
	npcQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if e := Actor.Get(entry).Entity; e.Script != nil {
			e.Script.Step(dt)
		}
	})

	PlayerTag.Each(w.ecs, func(entry *donburi.Entry) {
		Actor.Get(entry).Entity.ApplyIntents(in, run)
	})

	seconds := dt.Seconds()
	actorQuery.Each(w.ecs, func(entry *donburi.Entry) {
		Actor.Get(entry).Entity.Update(seconds)
	})

	w.ticks++
}

// ResetScripts rewinds every NPC program to its first instruction.
func (w *World) ResetScripts() {
	npcQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if e := Actor.Get(entry).Entity; e.Script != nil {
			e.Script.Reset()
		}
	})
}
