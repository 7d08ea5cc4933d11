package geom3d

// Segment is a pair of Points. It is degenerate when its length falls below
// Epsilon, at which point it is better treated as a single Point (see
// Triangle.Type and Classify).
type Segment struct {
	P0, P1 Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Length()
}

// IsDegenerate reports whether the segment's endpoints coincide to within
// Epsilon.
func (s Segment) IsDegenerate() bool {
	return s.Length() < Epsilon
}
