package geom3d

import "math"

// AABB is an axis-aligned bounding box given by its minimum and maximum
// corners. The empty-box sentinel (EmptyAABB) has Min = +Inf and Max = -Inf
// on every axis, chosen so that expanding it by any valid box yields that
// box unchanged.
type AABB struct {
	Min, Max Point
}

// EmptyAABB returns the empty-box sentinel.
func EmptyAABB() AABB {
	return AABB{
		Min: Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Expand returns the smallest AABB containing both a and other.
func (a AABB) Expand(other AABB) AABB {
	return AABB{
		Min: Point{
			X: minFloat(a.Min.X, other.Min.X),
			Y: minFloat(a.Min.Y, other.Min.Y),
			Z: minFloat(a.Min.Z, other.Min.Z),
		},
		Max: Point{
			X: maxFloat(a.Max.X, other.Max.X),
			Y: maxFloat(a.Max.Y, other.Max.Y),
			Z: maxFloat(a.Max.Z, other.Max.Z),
		},
	}
}

// ExpandTriangle returns the smallest AABB containing both a and t's bounds.
func (a AABB) ExpandTriangle(t Triangle) AABB {
	return a.Expand(t.Bounds())
}

// Center returns the component-wise midpoint of the box.
func (a AABB) Center() Point {
	return Point{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

// AxisExtent returns Max - Min along axis i (0=X, 1=Y, 2=Z).
func (a AABB) AxisExtent(i int) float64 {
	return a.Max.Axis(i) - a.Min.Axis(i)
}

// Overlaps reports whether a and b overlap on every axis, with the test on
// each axis inflated by Epsilon so that edge-touching boxes count as
// overlapping.
func Overlaps(a, b AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if a.Max.Axis(axis)+Epsilon < b.Min.Axis(axis) || b.Max.Axis(axis)+Epsilon < a.Min.Axis(axis) {
			return false
		}
	}
	return true
}
