package entity

import (
	"fmt"
	"image"

	"github.com/Faultbox/yarpgp/internal/engine/character"
)

// SheetColumns is the number of frames in each row of a character sheet:
// standing, left step and right step.
const SheetColumns = 3

// walkOrder plays left step, stand, right step, stand.
var walkOrder = []int{1, 0, 2, 0}

// FaceClip returns the name of the standing clip for dir.
func FaceClip(dir character.Direction) string {
	return "face_" + dir.String()
}

// WalkClip returns the name of the walk cycle clip for dir.
func WalkClip(dir character.Direction) string {
	return "walk_" + dir.String()
}

// StrideFrame reports whether playback index i of a walk clip shows a step
// rather than the standing pose.
func StrideFrame(i int) bool {
	return i >= 0 && i < len(walkOrder) && walkOrder[i] != 0
}

// CharacterSheet builds the clip catalog for an 8-direction character atlas.
// The atlas holds one row per direction in direction id order (North first),
// each row SheetColumns frames wide, starting at origin.
func CharacterSheet(frameWidth, frameHeight int, origin image.Point) (*character.Animation, error) {
	anim := character.NewAnimation(frameWidth, frameHeight)

	for _, dir := range character.Directions() {
		row := image.Rect(0, 0, SheetColumns*frameWidth, frameHeight).
			Add(origin).
			Add(image.Pt(0, int(dir)*frameHeight))

		if err := anim.AddClip(FaceClip(dir), []int{0}, row); err != nil {
			return nil, fmt.Errorf("character sheet: %w", err)
		}
		if err := anim.AddClip(WalkClip(dir), walkOrder, row); err != nil {
			return nil, fmt.Errorf("character sheet: %w", err)
		}
	}
	return anim, nil
}

// SheetSize returns the atlas size CharacterSheet expects.
func SheetSize(frameWidth, frameHeight int) image.Point {
	return image.Pt(SheetColumns*frameWidth, character.DirectionCount*frameHeight)
}
