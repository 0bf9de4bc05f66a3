// Package texture converts decoded images to pixel buffers and uploads them
// as SDL textures.
package texture

import (
	"image"
	"image/color"
	"image/draw"
)

// MagentaKey is the conventional sprite sheet background colour.
var MagentaKey = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// IsMagentaKey reports whether an RGB colour matches the magenta key.
// The tolerance absorbs rounding from palette and BMP decoding.
func IsMagentaKey(r, g, b uint8) bool {
	return r >= 250 && g <= 10 && b >= 250
}

// ApplyMagentaKey makes magenta pixels transparent black in place.
func ApplyMagentaKey(img *image.NRGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			if IsMagentaKey(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) {
				img.Pix[i] = 0
				img.Pix[i+1] = 0
				img.Pix[i+2] = 0
				img.Pix[i+3] = 0
			}
		}
	}
}

// ToNRGBA copies img into a non-premultiplied buffer with its origin at
// (0,0), the layout SDL's ABGR8888 surfaces expect on little-endian hosts.
func ToNRGBA(img image.Image, colorKey bool) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	if colorKey {
		ApplyMagentaKey(out)
	}
	return out
}
