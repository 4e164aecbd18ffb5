package figure

import (
	"strconv"

	"github.com/philipparndt/geotrace/pkg/geometry"
)

// PointID identifies a point for the lifetime of a store generation
type PointID string

// Point is a named position in canvas-pixel space
type Point struct {
	ID   PointID
	Name string
	X, Y float64
}

// Position returns the point as a vector
func (p Point) Position() geometry.Vector2 {
	return geometry.NewVector2(p.X, p.Y)
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AutoName returns the default name of the n-th point (0-indexed):
// A..Z, then A1..Z1, A2..Z2 and so on.
func AutoName(n int) string {
	if n < 0 {
		n = 0
	}
	letter := string(alphabet[n%len(alphabet)])
	if n < len(alphabet) {
		return letter
	}
	return letter + strconv.Itoa(n/len(alphabet))
}
