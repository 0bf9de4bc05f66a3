package character

import (
	gomath "math"

	"github.com/Faultbox/yarpgp/pkg/math"
)

// Intents are the four directional inputs sampled once per tick.
type Intents struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one intent is set.
func (in Intents) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// axis is the resolved outcome of one input axis.
type axis int

const (
	axisNeutral axis = iota
	axisNegative
	axisPositive
)

// intentCode combines the vertical and horizontal outcomes: vertical*3 + horizontal.
type intentCode int

const intentCodeCount = 9

// code resolves each axis by priority: up before down, left before right.
func (in Intents) code() intentCode {
	v := axisNeutral
	switch {
	case in.Up:
		v = axisNegative
	case in.Down:
		v = axisPositive
	}

	h := axisNeutral
	switch {
	case in.Left:
		h = axisNegative
	case in.Right:
		h = axisPositive
	}

	return intentCode(int(v)*3 + int(h))
}

// Cos45 is the per-axis multiplier for diagonal movement. Using it instead
// of 1 keeps diagonal speed equal to cardinal speed.
const Cos45 = gomath.Sqrt2 / 2

// codeDirection maps an intent code to the facing direction.
var codeDirection = [intentCodeCount]Direction{
	NoDirection, West, East,
	North, NorthWest, NorthEast,
	South, SouthWest, SouthEast,
}

// codeMultiplier maps an intent code to per-axis unit multipliers (+Y is south).
var codeMultiplier = [intentCodeCount]math.Vec2{
	{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0},
	{X: 0, Y: -1}, {X: -Cos45, Y: -Cos45}, {X: Cos45, Y: -Cos45},
	{X: 0, Y: 1}, {X: -Cos45, Y: Cos45}, {X: Cos45, Y: Cos45},
}

// directionIntents is the inverse of codeDirection, used to drive an entity
// from a script direction instead of live input.
var directionIntents = [DirectionCount]Intents{
	North:     {Up: true},
	NorthEast: {Up: true, Right: true},
	East:      {Right: true},
	SouthEast: {Down: true, Right: true},
	South:     {Down: true},
	SouthWest: {Down: true, Left: true},
	West:      {Left: true},
	NorthWest: {Up: true, Left: true},
}

// Resolve maps the tick's intents to a facing direction and a velocity of
// magnitude speed. Neutral input yields NoDirection and a zero velocity.
func Resolve(in Intents, speed float64) (Direction, math.Vec2) {
	c := in.code()
	return codeDirection[c], codeMultiplier[c].Scale(speed)
}

// IntentsFor returns the intents that resolve to dir. Invalid directions
// return no intents.
func IntentsFor(dir Direction) Intents {
	if !dir.Valid() {
		return Intents{}
	}
	return directionIntents[dir]
}

// Velocity returns the velocity for moving toward dir at speed.
func Velocity(dir Direction, speed float64) math.Vec2 {
	_, v := Resolve(IntentsFor(dir), speed)
	return v
}
