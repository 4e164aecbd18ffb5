package figure

import "fmt"

// ShapeKind enumerates the shape variants
type ShapeKind int

const (
	KindSegment ShapeKind = iota
	KindPolygon
	KindCircle
	KindAngle
)

func (k ShapeKind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindAngle:
		return "angle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is one of Segment, Polygon, Circle or Angle. Shapes refer to points
// by id only; a reference that no longer resolves makes the shape invisible
// rather than invalid.
type Shape interface {
	Kind() ShapeKind
	// PointIDs returns the referenced ids in their semantic order
	PointIDs() []PointID
	clone() Shape
}

// Segment is a straight line between A and B
type Segment struct {
	A, B PointID
}

func (s Segment) Kind() ShapeKind     { return KindSegment }
func (s Segment) PointIDs() []PointID { return []PointID{s.A, s.B} }
func (s Segment) clone() Shape        { return s }

// Polygon is a closed path through at least three points
type Polygon struct {
	Points []PointID
}

func (p Polygon) Kind() ShapeKind { return KindPolygon }

func (p Polygon) PointIDs() []PointID {
	ids := make([]PointID, len(p.Points))
	copy(ids, p.Points)
	return ids
}

func (p Polygon) clone() Shape { return Polygon{Points: p.PointIDs()} }

// Circle is centered at Center and passes through On
type Circle struct {
	Center, On PointID
}

func (c Circle) Kind() ShapeKind     { return KindCircle }
func (c Circle) PointIDs() []PointID { return []PointID{c.Center, c.On} }
func (c Circle) clone() Shape        { return c }

// Angle is the angle ABC with its vertex at B
type Angle struct {
	A, B, C PointID
}

func (a Angle) Kind() ShapeKind     { return KindAngle }
func (a Angle) PointIDs() []PointID { return []PointID{a.A, a.B, a.C} }
func (a Angle) clone() Shape        { return a }

// ResolveAll looks up every id of a shape. It reports false if any reference
// is dangling, in which case the shape must be skipped.
func ResolveAll(r Resolver, s Shape) ([]Point, bool) {
	ids := s.PointIDs()
	points := make([]Point, 0, len(ids))
	for _, id := range ids {
		p, ok := r.ResolvePoint(id)
		if !ok {
			return nil, false
		}
		points = append(points, p)
	}
	return points, true
}

// Resolver looks up points by id
type Resolver interface {
	ResolvePoint(id PointID) (Point, bool)
}
