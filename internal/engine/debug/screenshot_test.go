package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedCapture(dir string) *ScreenshotCapture {
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return sc
}

func TestGenerateFilename(t *testing.T) {
	sc := fixedCapture("out")
	want := filepath.Join("out", "shot_2024-05-06_07-08-09.000.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename = %q, want %q", got, want)
	}

	sc.SetOutputDir("")
	if got := sc.GenerateFilename(); got != "shot_2024-05-06_07-08-09.000.png" {
		t.Errorf("GenerateFilename without dir = %q", got)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := fixedCapture(dir)

	// 2x2 image with 4 padding bytes per row; top-left red, bottom-right blue
	pitch := 12
	pixels := make([]byte, pitch*2)
	copy(pixels[0:4], []byte{255, 0, 0, 255})
	copy(pixels[pitch+4:pitch+8], []byte{0, 0, 255, 255})

	name, err := sc.CaptureFromPixels(pixels, 2, 2, pitch)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("top-left = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(img.At(1, 1)); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("bottom-right = %v, want blue", got)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := fixedCapture(t.TempDir())
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2, 8); err == nil {
		t.Error("expected error for short pixel data")
	}
	if _, err := sc.CaptureFromPixels(make([]byte, 64), 4, 2, 8); err == nil {
		t.Error("expected error for pitch narrower than a row")
	}
}
