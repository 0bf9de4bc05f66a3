// Package character implements the per-entity animation state machine and
// the directional-intent to velocity resolver shared by players and NPCs.
package character

// Direction is a compass direction id. Values are ordered clockwise from North.
type Direction int

// Compass directions. NoDirection is the neutral result of the resolver.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NoDirection
)

// DirectionCount is the number of non-neutral compass directions.
const DirectionCount = 8

var directionNames = [...]string{
	North:       "north",
	NorthEast:   "northeast",
	East:        "east",
	SouthEast:   "southeast",
	South:       "south",
	SouthWest:   "southwest",
	West:        "west",
	NorthWest:   "northwest",
	NoDirection: "none",
}

// String returns the lowercase compass name, used in clip names and logs.
func (d Direction) String() string {
	if d < North || d > NoDirection {
		return "invalid"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + DirectionCount/2) % DirectionCount
}

// Directions lists the compass directions in id order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}
