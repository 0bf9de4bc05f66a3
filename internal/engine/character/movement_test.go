package character

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-9

func TestResolveTable(t *testing.T) {
	d := Cos45
	tests := []struct {
		name   string
		in     Intents
		dir    Direction
		vx, vy float64
	}{
		{"neutral", Intents{}, NoDirection, 0, 0},
		{"up", Intents{Up: true}, North, 0, -1},
		{"down", Intents{Down: true}, South, 0, 1},
		{"left", Intents{Left: true}, West, -1, 0},
		{"right", Intents{Right: true}, East, 1, 0},
		{"up left", Intents{Up: true, Left: true}, NorthWest, -d, -d},
		{"up right", Intents{Up: true, Right: true}, NorthEast, d, -d},
		{"down left", Intents{Down: true, Left: true}, SouthWest, -d, d},
		{"down right", Intents{Down: true, Right: true}, SouthEast, d, d},
		{"up wins over down", Intents{Up: true, Down: true}, North, 0, -1},
		{"left wins over right", Intents{Left: true, Right: true}, West, -1, 0},
		{"all four", Intents{Up: true, Down: true, Left: true, Right: true}, NorthWest, -d, -d},
		{"down with both horizontals", Intents{Down: true, Left: true, Right: true}, SouthWest, -d, d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, v := Resolve(tt.in, 1)
			if dir != tt.dir {
				t.Errorf("direction = %v, want %v", dir, tt.dir)
			}
			if gomath.Abs(v.X-tt.vx) > epsilon || gomath.Abs(v.Y-tt.vy) > epsilon {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", v.X, v.Y, tt.vx, tt.vy)
			}
		})
	}
}

func TestResolveNorthWestUsesCos45(t *testing.T) {
	const speed = 3.0
	dir, v := Resolve(Intents{Up: true, Left: true}, speed)
	if dir != NorthWest {
		t.Fatalf("direction = %v, want NorthWest", dir)
	}

	want := speed * gomath.Cos(gomath.Pi/4)
	if gomath.Abs(gomath.Abs(v.X)-want) > epsilon || gomath.Abs(gomath.Abs(v.Y)-want) > epsilon {
		t.Errorf("components = (%v, %v), want magnitude %v each", v.X, v.Y, want)
	}
	if gomath.Abs(v.X) == speed {
		t.Error("diagonal component must not equal the full speed")
	}
}

func TestDiagonalSpeedMatchesCardinal(t *testing.T) {
	const speed = 30.0
	for _, dir := range Directions() {
		v := Velocity(dir, speed)
		if gomath.Abs(v.Length()-speed) > 1e-9 {
			t.Errorf("%v: |v| = %v, want %v", dir, v.Length(), speed)
		}
	}
}

func TestVelocityRoundTrip(t *testing.T) {
	for _, dir := range Directions() {
		got, _ := Resolve(IntentsFor(dir), 1)
		if got != dir {
			t.Errorf("Resolve(IntentsFor(%v)) = %v", dir, got)
		}
	}

	if v := Velocity(NoDirection, 10); !v.IsZero() {
		t.Errorf("Velocity(NoDirection) = %v, want zero", v)
	}
	if v := Velocity(Direction(42), 10); !v.IsZero() {
		t.Errorf("Velocity(invalid) = %v, want zero", v)
	}
}

func TestIntentsAny(t *testing.T) {
	if (Intents{}).Any() {
		t.Error("empty intents reported Any")
	}
	if !(Intents{Right: true}).Any() {
		t.Error("right intent not reported by Any")
	}
}
