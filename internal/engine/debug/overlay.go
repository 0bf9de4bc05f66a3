package debug

import "image"

// Line is a segment in world pixels.
type Line struct {
	From, To image.Point
}

// Overlay holds which developer drawings are on.
type Overlay struct {
	Grid   bool // Tile boundaries
	Bounds bool // Entity frame rectangles
}

// Any reports whether anything is drawn.
func (o Overlay) Any() bool {
	return o.Grid || o.Bounds
}

// GridLines returns the tile boundaries of a map covering mapBounds with
// tileW x tileH tiles, limited to the part inside view.
func GridLines(mapBounds, view image.Rectangle, tileW, tileH int) []Line {
	if tileW <= 0 || tileH <= 0 {
		return nil
	}
	area := mapBounds.Intersect(view)
	if area.Empty() {
		return nil
	}

	var lines []Line
	for x := firstBoundary(mapBounds.Min.X, area.Min.X, tileW); x <= area.Max.X; x += tileW {
		lines = append(lines, Line{From: image.Pt(x, area.Min.Y), To: image.Pt(x, area.Max.Y)})
	}
	for y := firstBoundary(mapBounds.Min.Y, area.Min.Y, tileH); y <= area.Max.Y; y += tileH {
		lines = append(lines, Line{From: image.Pt(area.Min.X, y), To: image.Pt(area.Max.X, y)})
	}
	return lines
}

// firstBoundary returns the first grid line at or after from for a grid
// anchored at origin.
func firstBoundary(origin, from, step int) int {
	n := (from - origin + step - 1) / step
	return origin + n*step
}
