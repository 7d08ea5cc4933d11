package geom3d

// coplanarIntersect decides intersection for two Normal triangles whose
// planes coincide, per spec section 4.1.3: project to 2-D by dropping the
// axis most aligned with the (shared) normal, test every pair of edges for
// a crossing, then fall back to mutual containment. If both tests are
// exhausted the triangles do not intersect - this never falls through into
// SAT, which is only defined for non-coplanar triangles.
func coplanarIntersect(a, b Triangle) bool {
	u, v := projectionAxes(a.Normal())

	aEdges2D := [3]segment2D{
		{project2D(a.P0, u, v), project2D(a.P1, u, v)},
		{project2D(a.P1, u, v), project2D(a.P2, u, v)},
		{project2D(a.P2, u, v), project2D(a.P0, u, v)},
	}
	bEdges2D := [3]segment2D{
		{project2D(b.P0, u, v), project2D(b.P1, u, v)},
		{project2D(b.P1, u, v), project2D(b.P2, u, v)},
		{project2D(b.P2, u, v), project2D(b.P0, u, v)},
	}

	for _, e1 := range aEdges2D {
		for _, e2 := range bEdges2D {
			if segments2DIntersect(e1, e2) {
				return true
			}
		}
	}

	if a.ContainsTriangle(b) || b.ContainsTriangle(a) {
		return true
	}

	return false
}

// projectionAxes picks the two coordinate axes to retain when reducing to
// 2-D: the axis most aligned with n (argmax |n . e_i|) is dropped, and the
// remaining two are returned in increasing axis-index order. Picking by
// absolute value - rather than comparing the raw dot product against zero -
// is required so the choice is correct regardless of the sign of n's
// largest component.
func projectionAxes(n Vector) (u, v int) {
	ax, ay, az := absFloat(n.X), absFloat(n.Y), absFloat(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return 1, 2
	case ay >= az:
		return 0, 2
	default:
		return 0, 1
	}
}

type point2D struct {
	u, v float64
}

type segment2D struct {
	a, b point2D
}

func project2D(p Point, u, v int) point2D {
	return point2D{u: p.Axis(u), v: p.Axis(v)}
}

// signedArea2D is the signed area predicate for a 2-D point p against the
// directed segment (q0, q1): positive ("left") when p is to the left of the
// directed line q0->q1, negative ("right") when to the right, and within
// Epsilon of zero when on the line.
func signedArea2D(q0, q1, p point2D) float64 {
	return (q1.u-q0.u)*(p.v-q0.v) - (q1.v-q0.v)*(p.u-q0.u)
}

func onSegment2D(q0, q1, p point2D) bool {
	if absFloat(signedArea2D(q0, q1, p)) > Epsilon {
		return false
	}
	return p.u >= minFloat(q0.u, q1.u)-Epsilon && p.u <= maxFloat(q0.u, q1.u)+Epsilon &&
		p.v >= minFloat(q0.v, q1.v)-Epsilon && p.v <= maxFloat(q0.v, q1.v)+Epsilon
}

// segments2DIntersect reports whether two 2-D segments cross transversally
// (opposite-sign signed areas on both orientations) or touch at an endpoint.
func segments2DIntersect(s1, s2 segment2D) bool {
	d1 := signedArea2D(s2.a, s2.b, s1.a)
	d2 := signedArea2D(s2.a, s2.b, s1.b)
	d3 := signedArea2D(s1.a, s1.b, s2.a)
	d4 := signedArea2D(s1.a, s1.b, s2.b)

	transversal := ((d1 > Epsilon && d2 < -Epsilon) || (d1 < -Epsilon && d2 > Epsilon)) &&
		((d3 > Epsilon && d4 < -Epsilon) || (d3 < -Epsilon && d4 > Epsilon))
	if transversal {
		return true
	}

	if absFloat(d1) <= Epsilon && onSegment2D(s2.a, s2.b, s1.a) {
		return true
	}
	if absFloat(d2) <= Epsilon && onSegment2D(s2.a, s2.b, s1.b) {
		return true
	}
	if absFloat(d3) <= Epsilon && onSegment2D(s1.a, s1.b, s2.a) {
		return true
	}
	if absFloat(d4) <= Epsilon && onSegment2D(s1.a, s1.b, s2.b) {
		return true
	}

	return false
}
