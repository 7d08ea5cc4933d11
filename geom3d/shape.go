package geom3d

// Shape is the closed sum type the kernel actually dispatches on: every
// Triangle is classified into exactly one of PointShape, SegmentShape, or
// TriangleShape before any intersection predicate inspects it. This makes
// "triangle with unrecognized type" structurally unrepresentable at the
// dispatch site - the type switch in intersectShapes has no default arm that can
// be reached by a value produced through Classify.
type Shape interface {
	isShape()
}

// PointShape is a triangle degenerated to a single point.
type PointShape struct {
	P  Point
	ID int
}

func (PointShape) isShape() {}

// SegmentShape is a triangle degenerated to a line segment.
type SegmentShape struct {
	S  Segment
	ID int
}

func (SegmentShape) isShape() {}

// TriangleShape is a non-degenerate triangle.
type TriangleShape struct {
	T Triangle
}

func (TriangleShape) isShape() {}

// Classify reduces t to the Shape variant matching its Type.
func Classify(t Triangle) Shape {
	switch t.Type() {
	case TypeNormal:
		return TriangleShape{T: t}
	case TypePoint:
		return PointShape{P: t.toPoint(), ID: t.ID}
	case TypeSegment:
		return SegmentShape{S: t.toSegment(), ID: t.ID}
	default:
		panic(invariantViolation("triangle %d has unrecognized shape type", t.ID))
	}
}
