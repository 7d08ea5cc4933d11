package geom3d

// sat decides, for two Normal triangles whose planes properly intersect,
// whether they overlap by running the Separating Axis Theorem over 11
// candidate axes: the two face normals and the nine cross products of an
// edge from a with an edge from b. sat is only valid for non-coplanar
// triangles - the coplanar case is handled separately by coplanarIntersect,
// and SAT must never be reached as a fallthrough from it.
func sat(a, b Triangle) bool {
	if !axisOverlaps(a, b, a.Normal()) {
		return false
	}
	if !axisOverlaps(a, b, b.Normal()) {
		return false
	}

	aEdges := a.edges()
	bEdges := b.edges()
	for _, ae := range aEdges {
		for _, be := range bEdges {
			if !axisOverlaps(a, b, Cross(ae, be)) {
				return false
			}
		}
	}
	return true
}

// axisOverlaps reports whether the projections of a and b onto axis
// overlap (true = no separation on this axis). Axes whose length is below
// Epsilon carry no separation information - parallel edges - and are
// skipped by treating them as overlapping.
func axisOverlaps(a, b Triangle, axis Vector) bool {
	if axis.Length() < Epsilon {
		return true
	}

	aMin, aMax := a.project(axis)
	bMin, bMax := b.project(axis)

	return !(aMax < bMin-Epsilon || bMax < aMin-Epsilon)
}
