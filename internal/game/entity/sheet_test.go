package entity

import (
	"image"
	"testing"

	"github.com/Faultbox/yarpgp/internal/engine/character"
)

func TestCharacterSheetClips(t *testing.T) {
	anim, err := CharacterSheet(16, 24, image.Pt(0, 48))
	if err != nil {
		t.Fatalf("CharacterSheet: %v", err)
	}

	for _, dir := range character.Directions() {
		face, ok := anim.Clip(FaceClip(dir))
		if !ok {
			t.Fatalf("missing %s", FaceClip(dir))
		}
		if face.FrameCount() != 1 {
			t.Errorf("%s: %d frames, want 1", FaceClip(dir), face.FrameCount())
		}

		walk, ok := anim.Clip(WalkClip(dir))
		if !ok {
			t.Fatalf("missing %s", WalkClip(dir))
		}
		if walk.FrameCount() != 4 {
			t.Errorf("%s: %d frames, want 4", WalkClip(dir), walk.FrameCount())
		}

		wantRow := image.Rect(0, 48+int(dir)*24, 48, 72+int(dir)*24)
		if walk.Region() != wantRow {
			t.Errorf("%s: region %v, want %v", WalkClip(dir), walk.Region(), wantRow)
		}
	}
}

func TestCharacterSheetWalkOrder(t *testing.T) {
	anim, err := CharacterSheet(16, 24, image.Point{})
	if err != nil {
		t.Fatalf("CharacterSheet: %v", err)
	}
	anim.SelectClip(WalkClip(character.East))
	anim.SetDuration(4)

	// East is row 2; stand is column 0.
	wantX := []int{16, 0, 32, 0}
	for i, x := range wantX {
		rect, ok := anim.CurrentFrameRect()
		if !ok {
			t.Fatalf("frame %d: no rect", i)
		}
		if rect.Min.X != x || rect.Min.Y != 48 {
			t.Errorf("frame %d: origin %v, want (%d,48)", i, rect.Min, x)
		}
		anim.Update(1)
	}
}

func TestCharacterSheetRejectsZeroFrame(t *testing.T) {
	if _, err := CharacterSheet(0, 24, image.Point{}); err == nil {
		t.Error("expected an error for a zero frame width")
	}
}

func TestSheetSize(t *testing.T) {
	if got := SheetSize(16, 24); got != image.Pt(48, 192) {
		t.Errorf("SheetSize = %v, want (48,192)", got)
	}
}

func TestStrideFrame(t *testing.T) {
	for i, want := range []bool{true, false, true, false} {
		if got := StrideFrame(i); got != want {
			t.Errorf("StrideFrame(%d) = %v, want %v", i, got, want)
		}
	}
	if StrideFrame(-1) || StrideFrame(4) {
		t.Error("out of range indices are not strides")
	}
}
