// Package camera provides a 2D follow camera for the logical screen.
package camera

import (
	"image"
	gomath "math"

	"github.com/Faultbox/yarpgp/pkg/math"
)

// Camera maps world pixels to screen pixels by a translation.
type Camera struct {
	// View is the logical screen size.
	View image.Point
	// Bounds limits the visible area, usually the tile map. An empty
	// rectangle disables clamping.
	Bounds image.Rectangle

	// Offset is the world position drawn at the screen's top-left corner.
	Offset math.Vec2
}

// New creates a camera for a view of the given size.
func New(width, height int) *Camera {
	return &Camera{View: image.Pt(width, height)}
}

// Follow centres the view on target, then clamps it inside Bounds. A map
// smaller than the view is centred instead.
func (c *Camera) Follow(target math.Vec2) {
	c.Offset = math.Vec2{
		X: target.X - float64(c.View.X)/2,
		Y: target.Y - float64(c.View.Y)/2,
	}
	if c.Bounds.Empty() {
		return
	}
	c.Offset.X = clampAxis(c.Offset.X, c.Bounds.Min.X, c.Bounds.Max.X, c.View.X)
	c.Offset.Y = clampAxis(c.Offset.Y, c.Bounds.Min.Y, c.Bounds.Max.Y, c.View.Y)
}

func clampAxis(v float64, lo, hi, view int) float64 {
	span := hi - lo
	if span <= view {
		return float64(lo) - float64(view-span)/2
	}
	return gomath.Max(float64(lo), gomath.Min(v, float64(hi-view)))
}

// WorldToScreen translates a world rectangle to screen space.
func (c *Camera) WorldToScreen(r image.Rectangle) image.Rectangle {
	return r.Sub(c.origin())
}

// Visible reports whether a world rectangle overlaps the view.
func (c *Camera) Visible(r image.Rectangle) bool {
	return c.WorldToScreen(r).Overlaps(image.Rectangle{Max: c.View})
}

// origin rounds the offset down so tiles stay on whole pixels.
func (c *Camera) origin() image.Point {
	return image.Pt(int(gomath.Floor(c.Offset.X)), int(gomath.Floor(c.Offset.Y)))
}

// ViewRect returns the world rectangle currently on screen.
func (c *Camera) ViewRect() image.Rectangle {
	return image.Rectangle{Max: c.View}.Add(c.origin())
}
