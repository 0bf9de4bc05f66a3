package debug

import (
	"image"
	"testing"
)

func TestGridLinesFullView(t *testing.T) {
	mapBounds := image.Rect(0, 0, 64, 32)
	lines := GridLines(mapBounds, image.Rect(-100, -100, 500, 500), 16, 16)

	// 5 vertical (0..64) and 3 horizontal (0..32)
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != (Line{From: image.Pt(0, 0), To: image.Pt(0, 32)}) {
		t.Errorf("first vertical line = %v", lines[0])
	}
	if lines[7] != (Line{From: image.Pt(0, 32), To: image.Pt(64, 32)}) {
		t.Errorf("last horizontal line = %v", lines[7])
	}
}

func TestGridLinesClippedToView(t *testing.T) {
	lines := GridLines(image.Rect(0, 0, 64, 32), image.Rect(10, 5, 40, 100), 16, 16)

	want := []Line{
		{From: image.Pt(16, 5), To: image.Pt(16, 32)},
		{From: image.Pt(32, 5), To: image.Pt(32, 32)},
		{From: image.Pt(10, 16), To: image.Pt(40, 16)},
		{From: image.Pt(10, 32), To: image.Pt(40, 32)},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestGridLinesEmpty(t *testing.T) {
	if lines := GridLines(image.Rect(0, 0, 64, 32), image.Rect(100, 100, 200, 200), 16, 16); lines != nil {
		t.Errorf("expected no lines outside the view, got %v", lines)
	}
	if lines := GridLines(image.Rect(0, 0, 64, 32), image.Rect(0, 0, 64, 32), 0, 16); lines != nil {
		t.Errorf("expected no lines for zero tile width, got %v", lines)
	}
}

func TestOverlayAny(t *testing.T) {
	if (Overlay{}).Any() {
		t.Error("empty overlay should draw nothing")
	}
	if !(Overlay{Bounds: true}).Any() {
		t.Error("bounds overlay should draw")
	}
}
