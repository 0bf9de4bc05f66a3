// Package renderer draws the tile map and entity sprites with the SDL 2D
// renderer.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/engine/camera"
	"github.com/Faultbox/yarpgp/internal/engine/debug"
	"github.com/Faultbox/yarpgp/internal/engine/texture"
	"github.com/Faultbox/yarpgp/internal/logger"
)

// ClearColor is the background behind the map.
var ClearColor = color.RGBA{R: 30, G: 60, B: 90, A: 255}

// Sprite is one textured quad in world space.
type Sprite struct {
	Texture string
	Src     image.Rectangle
	Dst     image.Rectangle
}

// Renderer owns the uploaded textures and draws frames through a camera.
type Renderer struct {
	sdl      *sdl.Renderer
	camera   *camera.Camera
	textures map[string]*sdl.Texture
	log      *zap.Logger
}

// New creates a renderer drawing to r.
func New(r *sdl.Renderer, cam *camera.Camera) *Renderer {
	return &Renderer{
		sdl:      r,
		camera:   cam,
		textures: make(map[string]*sdl.Texture),
		log:      logger.Named("renderer"),
	}
}

// AddTexture uploads img under name, replacing any texture with that name.
func (r *Renderer) AddTexture(name string, img image.Image, colorKey bool) error {
	tex, err := texture.Upload(r.sdl, img, colorKey)
	if err != nil {
		return fmt.Errorf("texture %s: %w", name, err)
	}
	if old, ok := r.textures[name]; ok {
		old.Destroy()
	}
	r.textures[name] = tex

	r.log.Debug("texture uploaded",
		zap.String("name", name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return nil
}

// Camera returns the camera the renderer draws through.
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// Begin clears the frame.
func (r *Renderer) Begin() error {
	c := ClearColor
	if err := r.sdl.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return r.sdl.Clear()
}

// Draw copies sprites in order. Sprites outside the view or with an unknown
// texture are skipped.
func (r *Renderer) Draw(sprites []Sprite) error {
	for _, s := range sprites {
		if !r.camera.Visible(s.Dst) {
			continue
		}
		tex, ok := r.textures[s.Texture]
		if !ok {
			continue
		}
		dst := r.camera.WorldToScreen(s.Dst)
		if err := r.sdl.Copy(tex, sdlRect(s.Src), sdlRect(dst)); err != nil {
			return fmt.Errorf("draw %s: %w", s.Texture, err)
		}
	}
	return nil
}

// DrawLines draws world-space segments in c.
func (r *Renderer) DrawLines(lines []debug.Line, c color.RGBA) error {
	if err := r.sdl.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	origin := r.camera.WorldToScreen(image.Rectangle{}).Min
	for _, l := range lines {
		from, to := l.From.Add(origin), l.To.Add(origin)
		if err := r.sdl.DrawLine(int32(from.X), int32(from.Y), int32(to.X), int32(to.Y)); err != nil {
			return err
		}
	}
	return nil
}

// DrawRects outlines world-space rectangles in c. Rectangles outside the
// view are skipped.
func (r *Renderer) DrawRects(rects []image.Rectangle, c color.RGBA) error {
	if err := r.sdl.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	for _, rect := range rects {
		if !r.camera.Visible(rect) {
			continue
		}
		if err := r.sdl.DrawRect(sdlRect(r.camera.WorldToScreen(rect))); err != nil {
			return err
		}
	}
	return nil
}

// ReadPixels copies the current back buffer, before End presents it.
func (r *Renderer) ReadPixels() (*image.RGBA, error) {
	w, h, err := r.sdl.GetOutputSize()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	if len(img.Pix) == 0 {
		return img, nil
	}
	if err := r.sdl.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	return img, nil
}

// End presents the frame.
func (r *Renderer) End() {
	r.sdl.Present()
}

// Close destroys all textures.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("textures", len(r.textures)))
	for name, tex := range r.textures {
		tex.Destroy()
		delete(r.textures, name)
	}
}

func sdlRect(rect image.Rectangle) *sdl.Rect {
	return &sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	}
}
