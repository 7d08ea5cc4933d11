package geom3d

import "testing"

func TestBuildEmptyInput(t *testing.T) {
	b := Build(nil)
	got := b.FindIntersecting()
	if len(got) != 0 {
		t.Errorf("FindIntersecting() on empty BVH = %v, want empty", got)
	}
}

// collectLeaves walks the tree and returns every leaf reached.
func collectLeaves(n bvhNode) []*leafNode {
	switch v := n.(type) {
	case *leafNode:
		return []*leafNode{v}
	case *internalNode:
		return append(collectLeaves(v.left), collectLeaves(v.right)...)
	default:
		return nil
	}
}

func TestBuildPartitionsEveryTriangleExactlyOnce(t *testing.T) {
	n := 37
	triangles := make([]Triangle, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		triangles[i] = Triangle{
			P0: Point{x, 0, 0}, P1: Point{x + 1, 0, 0}, P2: Point{x, 1, 0},
			ID: i,
		}
	}

	b := Build(triangles)

	seen := make(map[int]int)
	for _, leaf := range collectLeaves(b.root) {
		if len(leaf.triangles) == 0 {
			t.Fatalf("leaf view is empty")
		}
		for _, tri := range leaf.triangles {
			seen[tri.ID]++
		}
	}

	if len(seen) != n {
		t.Fatalf("partition covers %d distinct ids, want %d", len(seen), n)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("id %d appears in %d leaves, want exactly 1", id, count)
		}
	}
}

func TestBuildLeavesAreContiguousInBuffer(t *testing.T) {
	n := 20
	triangles := make([]Triangle, n)
	for i := 0; i < n; i++ {
		triangles[i] = Triangle{P0: Point{float64(i), 0, 0}, P1: Point{float64(i) + 1, 0, 0}, P2: Point{float64(i), 1, 0}, ID: i}
	}

	b := Build(triangles)

	total := 0
	for _, leaf := range collectLeaves(b.root) {
		if len(leaf.triangles) == 0 || &leaf.triangles[0] != &b.triangles[total] {
			t.Errorf("leaf at buffer offset %d is not the next contiguous slice of the buffer", total)
		}
		total += len(leaf.triangles)
		if len(leaf.triangles) > MaxTrianglesPerLeaf {
			t.Errorf("leaf holds %d triangles, exceeds MaxTrianglesPerLeaf=%d", len(leaf.triangles), MaxTrianglesPerLeaf)
		}
	}
	if total != n {
		t.Errorf("leaves hold %d triangles total, want %d", total, n)
	}
}

func TestBoundingBoxTightness(t *testing.T) {
	triangles := []Triangle{
		{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{0, 1, 0}, ID: 0},
		{P0: Point{5, 5, 5}, P1: Point{6, 5, 5}, P2: Point{5, 6, 5}, ID: 1},
		{P0: Point{-3, -3, -3}, P1: Point{-2, -3, -3}, P2: Point{-3, -2, -3}, ID: 2},
		{P0: Point{10, 0, 0}, P1: Point{11, 0, 0}, P2: Point{10, 1, 0}, ID: 3},
		{P0: Point{2, 2, 2}, P1: Point{3, 2, 2}, P2: Point{2, 3, 2}, ID: 4},
	}

	b := Build(triangles)
	checkTightness(t, b.root)
}

func checkTightness(t *testing.T, n bvhNode) AABB {
	switch v := n.(type) {
	case *leafNode:
		box := EmptyAABB()
		for _, tri := range v.triangles {
			box = box.ExpandTriangle(tri)
		}
		assertWithin(t, box, v.aabb)
		return v.aabb
	case *internalNode:
		leftBox := checkTightness(t, v.left)
		rightBox := checkTightness(t, v.right)
		union := leftBox.Expand(rightBox)
		assertWithin(t, union, v.aabb)
		return v.aabb
	default:
		t.Fatalf("unrecognized node type")
		return AABB{}
	}
}

func assertWithin(t *testing.T, inner, outer AABB) {
	t.Helper()
	const drift = 1e-9
	for axis := 0; axis < 3; axis++ {
		if inner.Min.Axis(axis) < outer.Min.Axis(axis)-drift {
			t.Errorf("inner min %v below outer min %v on axis %d", inner.Min, outer.Min, axis)
		}
		if inner.Max.Axis(axis) > outer.Max.Axis(axis)+drift {
			t.Errorf("inner max %v above outer max %v on axis %d", inner.Max, outer.Max, axis)
		}
	}
}

func TestFindIntersectingNoSelfPairs(t *testing.T) {
	triangles := []Triangle{
		{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{0, 1, 0}, ID: 0},
	}
	b := Build(triangles)
	got := b.FindIntersecting()
	if len(got) != 0 {
		t.Errorf("single triangle should never intersect itself in the result set, got %v", got)
	}
}

func TestDumpDoesNotPanicOnEmptyOrSingleton(t *testing.T) {
	var buf dummyWriter
	if err := Build(nil).Dump(&buf); err != nil {
		t.Errorf("Dump(empty) error: %v", err)
	}
	tri := Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{0, 1, 0}, ID: 0}
	if err := Build([]Triangle{tri}).Dump(&buf); err != nil {
		t.Errorf("Dump(singleton) error: %v", err)
	}
}

type dummyWriter struct{}

func (dummyWriter) Write(p []byte) (int, error) { return len(p), nil }
