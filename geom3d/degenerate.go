package geom3d

// intersectPointPoint reports whether two degenerate point-triangles
// coincide within Epsilon.
func intersectPointPoint(a, b PointShape) bool {
	return a.P.ApproxEqual(b.P)
}

// intersectPointSegment reports whether p lies on s: the degenerate form of
// the collinearity-plus-between test, checking that the sum of distances
// from p to each endpoint equals the segment's own length.
func intersectPointSegment(p PointShape, s SegmentShape) bool {
	return pointOnSegment(p.P, s.S)
}

func pointOnSegment(p Point, s Segment) bool {
	sum := p.Sub(s.P0).Length() + p.Sub(s.P1).Length()
	return absFloat(sum-s.Length()) < Epsilon
}

// intersectSegmentSegment decides intersection between two possibly skew
// 3-D segments per spec section 4.1.4. Parallel/colinear segments (N null)
// are rejected if offset from one another, otherwise reduced to a 1-D
// interval-overlap test; non-parallel segments are solved for their two
// line parameters and accepted when both lie in [0,1] (with an Epsilon pad).
func intersectSegmentSegment(s1, s2 SegmentShape) bool {
	v1 := s1.S.P1.Sub(s1.S.P0)
	v2 := s2.S.P1.Sub(s2.S.P0)
	d := s2.S.P0.Sub(s1.S.P0)
	n := Cross(v1, v2)

	if n.IsNull() {
		if !Cross(d, v1).IsNull() {
			return false
		}

		denom := Dot(v1, v1)
		t0 := Dot(d, v1) / denom
		t1 := Dot(s2.S.P1.Sub(s1.S.P0), v1) / denom

		projMin := minFloat(t0, t1)
		projMax := maxFloat(t0, t1)

		return maxFloat(projMin, 0) <= minFloat(projMax, 1)+Epsilon
	}

	dist := absFloat(Dot(d, n))
	if dist > Epsilon {
		return false
	}

	denom := Dot(n, n)
	t := Dot(Cross(d, v2), n) / denom
	s := Dot(Cross(d, v1), n) / denom

	return t >= -Epsilon && t <= 1+Epsilon && s >= -Epsilon && s <= 1+Epsilon
}

// intersectPointTriangle reports whether p lies on the (planar) face of t:
// off-plane points are rejected outright, in-plane points are resolved by
// barycentric containment.
func intersectPointTriangle(p PointShape, t Triangle) bool {
	n := t.Normal()
	if absFloat(Dot(p.P.Sub(t.P0), n)) >= Epsilon {
		return false
	}
	return t.Contains(p.P)
}

// intersectSegmentTriangle reports whether s meets t, splitting on whether s
// runs parallel to t's plane.
func intersectSegmentTriangle(s SegmentShape, t Triangle) bool {
	n := t.Normal()
	dir := s.S.P0.Sub(s.S.P1)

	if absFloat(Dot(n, dir)) <= Epsilon {
		return segmentInPlaneIntersectsTriangle(s.S, t, n)
	}
	return segmentCrossesTriangle(s.S, t, dir)
}

func segmentInPlaneIntersectsTriangle(s Segment, t Triangle, n Vector) bool {
	if absFloat(Dot(s.P0.Sub(t.P0), n)) >= Epsilon {
		return false
	}

	edges := [3]Segment{
		{P0: t.P0, P1: t.P1},
		{P0: t.P1, P1: t.P2},
		{P0: t.P2, P1: t.P0},
	}
	for _, edge := range edges {
		if segment3DIntersectsSegment3D(edge, s) {
			return true
		}
	}

	if t.Contains(s.P0) || t.Contains(s.P1) {
		return true
	}

	return false
}

// segment3DIntersectsSegment3D reuses the general segment/segment routine
// for the edge-vs-segment tests above; both segments lie in the same plane
// here, so it reduces to the parallel/colinear branch or an exact crossing.
func segment3DIntersectsSegment3D(a, b Segment) bool {
	return intersectSegmentSegment(SegmentShape{S: a}, SegmentShape{S: b})
}

// segmentCrossesTriangle handles a segment that pierces t's plane, using a
// Moller-Trumbore-style parameterization. k is the segment's own parameter:
// the hit point is s.P0 + k*dir with dir = P0 - P1, so the segment spans
// k in [-1, 0] and hits outside that range (the rest of the infinite line)
// are rejected; u, v are the triangle's barycentric coordinates of the hit point.
func segmentCrossesTriangle(s Segment, t Triangle, dir Vector) bool {
	e1 := t.P1.Sub(t.P0)
	e2 := t.P2.Sub(t.P0)
	k := s.P0.Sub(t.P0)
	p := Cross(dir, e2)
	q := Cross(k, e1)

	denom := Dot(p, e1)

	kParam := Dot(q, e2) / denom
	u := Dot(p, k) / denom
	v := Dot(q, dir) / denom

	return u >= 0 && v >= 0 && 1-u-v >= 0 && kParam >= -1-Epsilon && kParam <= Epsilon
}
