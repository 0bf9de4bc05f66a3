package world

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"

	"github.com/Faultbox/yarpgp/pkg/math"
)

// SpawnLayer is the object group holding named spawn points.
const SpawnLayer = "Spawns"

// ErrNoTileset is returned for a tile that references no tileset image.
var ErrNoTileset = errors.New("tile has no tileset image")

// Tile is one drawable map cell.
type Tile struct {
	Atlas string          // Slash-separated image path inside the asset FS
	Src   image.Rectangle // Source rect within Atlas
	Dst   image.Rectangle // Destination rect in map pixels
}

// TileLayer is a named list of non-empty cells in row-major order.
type TileLayer struct {
	Name  string
	Tiles []Tile
}

// TileMap is a background map flattened into draw lists.
type TileMap struct {
	Width      int // In tiles
	Height     int
	TileWidth  int
	TileHeight int

	Layers  []TileLayer
	Atlases []string // Every atlas referenced by Layers, in first-use order
	Spawns  map[string]math.Vec2
}

// LoadTileMap reads a TMX map from fsys.
func LoadTileMap(fsys fs.FS, name string) (*TileMap, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	m := &TileMap{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Spawns:     make(map[string]math.Vec2),
	}

	mapDir := path.Dir(name)
	seen := make(map[string]bool)

	for _, layer := range levelMap.Layers {
		tl := TileLayer{Name: layer.Name}
		for i, cell := range layer.Tiles {
			if cell == nil || cell.IsNil() {
				continue
			}

			atlas, src, err := tileSource(mapDir, cell)
			if err != nil {
				return nil, fmt.Errorf("layer %q cell %d: %w", layer.Name, i, err)
			}
			if !seen[atlas] {
				seen[atlas] = true
				m.Atlases = append(m.Atlases, atlas)
			}

			x, y := i%m.Width, i/m.Width
			origin := image.Pt(x*m.TileWidth, y*m.TileHeight)
			tl.Tiles = append(tl.Tiles, Tile{
				Atlas: atlas,
				Src:   src,
				Dst:   image.Rectangle{Min: origin, Max: origin.Add(image.Pt(m.TileWidth, m.TileHeight))},
			})
		}
		m.Layers = append(m.Layers, tl)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnLayer {
			continue
		}
		for _, o := range og.Objects {
			m.Spawns[o.Name] = math.Vec2{X: o.X, Y: o.Y}
		}
	}

	return m, nil
}

// tileSource returns the atlas path and source rect of a cell. Tilesets are
// laid out as a grid with an outer margin and spacing between cells.
func tileSource(mapDir string, cell *tiled.LayerTile) (string, image.Rectangle, error) {
	ts := cell.Tileset
	if ts == nil || ts.Image == nil || ts.Image.Source == "" {
		return "", image.Rectangle{}, ErrNoTileset
	}

	columns := ts.Columns
	if columns <= 0 {
		columns = 1
	}

	id := int(cell.ID)
	origin := image.Pt(
		ts.Margin+(id%columns)*(ts.TileWidth+ts.Spacing),
		ts.Margin+(id/columns)*(ts.TileHeight+ts.Spacing),
	)
	src := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(ts.TileWidth, ts.TileHeight))}

	dir := mapDir
	if ts.Source != "" {
		dir = path.Join(mapDir, path.Dir(ts.Source))
	}
	return path.Join(dir, ts.Image.Source), src, nil
}

// PixelSize returns the map size in pixels.
func (m *TileMap) PixelSize() image.Point {
	return image.Pt(m.Width*m.TileWidth, m.Height*m.TileHeight)
}

// Spawn returns the named spawn point.
func (m *TileMap) Spawn(name string) (math.Vec2, bool) {
	p, ok := m.Spawns[name]
	return p, ok
}

// TileCount returns the number of drawable cells across all layers.
func (m *TileMap) TileCount() int {
	n := 0
	for _, l := range m.Layers {
		n += len(l.Tiles)
	}
	return n
}
