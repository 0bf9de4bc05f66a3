package game

import (
	"image"

	"github.com/Faultbox/yarpgp/internal/engine/debug"
	"github.com/Faultbox/yarpgp/internal/engine/renderer"
	"github.com/Faultbox/yarpgp/internal/game/world"
)

// Sprites lists what to draw for w: tile layers in map order, then visible
// entities in ID order using the character atlas.
func Sprites(w *world.World, atlas string) []renderer.Sprite {
	var out []renderer.Sprite

	if tm := w.TileMap(); tm != nil {
		out = make([]renderer.Sprite, 0, tm.TileCount()+w.Count())
		for _, layer := range tm.Layers {
			for _, t := range layer.Tiles {
				out = append(out, renderer.Sprite{Texture: t.Atlas, Src: t.Src, Dst: t.Dst})
			}
		}
	}

	for _, e := range w.Entities() {
		if !e.Visible {
			continue
		}
		src, ok := e.CurrentFrameRect()
		if !ok {
			continue
		}
		out = append(out, renderer.Sprite{Texture: atlas, Src: src, Dst: e.Bounds()})
	}
	return out
}

// Outlines lists the frame rectangles of visible entities for the bounds
// overlay.
func Outlines(w *world.World) []image.Rectangle {
	var out []image.Rectangle
	for _, e := range w.Entities() {
		if e.Visible {
			out = append(out, e.Bounds())
		}
	}
	return out
}

// Grid lists the tile boundaries of w's map inside view. It is empty without
// a map.
func Grid(w *world.World, view image.Rectangle) []debug.Line {
	tm := w.TileMap()
	if tm == nil {
		return nil
	}
	return debug.GridLines(image.Rectangle{Max: tm.PixelSize()}, view, tm.TileWidth, tm.TileHeight)
}
