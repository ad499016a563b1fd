package model

import "fmt"

// Position is a point in world space (meters, Y up).
type Position struct {
	X float64
	Y float64
	Z float64
}

// NewPosition creates a position from coordinates.
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// Origin returns the world origin (0,0,0).
// Used as fallback for malformed spawn-point data.
func Origin() Position {
	return Position{}
}

func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X, p.Y, p.Z)
}
