package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Upload converts img and creates a static texture on r. Magenta pixels
// become transparent when colorKey is set.
func Upload(r *sdl.Renderer, img image.Image, colorKey bool) (*sdl.Texture, error) {
	pix := ToNRGBA(img, colorKey)
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&pix.Pix[0]),
		int32(w), int32(h), 32, int32(pix.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateRGBSurfaceWithFormatFrom failed: %w", err)
	}
	defer surface.Free()

	tex, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateTextureFromSurface failed: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("SDL_SetTextureBlendMode failed: %w", err)
	}
	return tex, nil
}
