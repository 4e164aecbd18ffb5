package figure

import (
	"strings"

	"github.com/google/uuid"
	"github.com/philipparndt/geotrace/pkg/geometry"
)

// Store owns the points and shapes of a figure. Points live in an arena
// indexed by id; shapes hold ids only.
type Store struct {
	points []Point
	index  map[PointID]int
	shapes []Shape
	newID  func() PointID
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithIDGenerator replaces the UUID generator used for new points
func WithIDGenerator(gen func() PointID) StoreOption {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore creates an empty store
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		points: make([]Point, 0),
		index:  make(map[PointID]int),
		shapes: make([]Shape, 0),
		newID: func() PointID {
			return PointID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NearestPoint returns the point closest to (x, y) within maxDist.
// Ties keep the earliest point.
func (s *Store) NearestPoint(x, y, maxDist float64) (Point, bool) {
	target := geometry.NewVector2(x, y)
	maxD2 := maxDist * maxDist

	best := -1
	bestD2 := 0.0
	for i, p := range s.points {
		d2 := target.DistanceSquared(p.Position())
		if d2 <= maxD2 && (best < 0 || d2 < bestD2) {
			best = i
			bestD2 = d2
		}
	}

	if best < 0 {
		return Point{}, false
	}
	return s.points[best], true
}

// AddPoint reuses the nearest point within reuseRadius of (x, y), or creates
// a new auto-named point. created reports whether the store changed.
func (s *Store) AddPoint(x, y, reuseRadius float64) (id PointID, created bool) {
	if p, ok := s.NearestPoint(x, y, reuseRadius); ok {
		return p.ID, false
	}

	id = s.newID()
	for _, exists := s.index[id]; exists; _, exists = s.index[id] {
		id = s.newID()
	}

	s.index[id] = len(s.points)
	s.points = append(s.points, Point{
		ID:   id,
		Name: AutoName(len(s.points)),
		X:    x,
		Y:    y,
	})
	return id, true
}

// RenamePoint sets the display name of a point. Names that trim to empty
// and unknown ids are ignored.
func (s *Store) RenamePoint(id PointID, name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.points[i].Name = trimmed
	return true
}

// AddShape appends a shape. Arity is the caller's responsibility.
func (s *Store) AddShape(shape Shape) {
	s.shapes = append(s.shapes, shape.clone())
}

// ResolvePoint looks up a point by id
func (s *Store) ResolvePoint(id PointID) (Point, bool) {
	i, ok := s.index[id]
	if !ok {
		return Point{}, false
	}
	return s.points[i], true
}

// Points returns a copy of all points in creation order
func (s *Store) Points() []Point {
	points := make([]Point, len(s.points))
	copy(points, s.points)
	return points
}

// Shapes returns a copy of all shapes in insertion order
func (s *Store) Shapes() []Shape {
	shapes := make([]Shape, len(s.shapes))
	for i, shape := range s.shapes {
		shapes[i] = shape.clone()
	}
	return shapes
}

// PointCount returns the number of points
func (s *Store) PointCount() int {
	return len(s.points)
}

// ShapeCount returns the number of shapes
func (s *Store) ShapeCount() int {
	return len(s.shapes)
}

// Clear removes every point and shape, starting a new generation
func (s *Store) Clear() {
	s.points = make([]Point, 0)
	s.index = make(map[PointID]int)
	s.shapes = make([]Shape, 0)
}

// Clone returns a deep copy that shares no containers with s
func (s *Store) Clone() *Store {
	c := &Store{
		points: s.Points(),
		index:  make(map[PointID]int, len(s.index)),
		shapes: s.Shapes(),
		newID:  s.newID,
	}
	for id, i := range s.index {
		c.index[id] = i
	}
	return c
}
