package geom3d

import (
	"fmt"
	"io"
	"sort"
)

// MaxTrianglesPerLeaf bounds the number of triangles a leaf node may carry
// before the build recurses further.
const MaxTrianglesPerLeaf = 3

// bvhNode is the closed sum type for a BVH tree node: either a leafNode
// holding a contiguous, non-empty view into the triangle buffer, or an
// internalNode holding two owned children. The two alternatives share no
// fields, so a leaf-with-children or internal-with-triangles state is not
// representable.
type bvhNode interface {
	bounds() AABB
}

type leafNode struct {
	aabb      AABB
	triangles []Triangle // non-owning view into BVH.triangles
}

func (l *leafNode) bounds() AABB { return l.aabb }

type internalNode struct {
	aabb        AABB
	left, right bvhNode
}

func (n *internalNode) bounds() AABB { return n.aabb }

// BVH owns a permuted triangle buffer and the root of the tree built over
// it. It is built once from a caller-supplied sequence of triangles and is
// then queried; queries accumulate into a fresh result set each call.
type BVH struct {
	triangles []Triangle
	root      bvhNode
}

// Build constructs a BVH over triangles in one pass, taking ownership of
// (and permuting) the slice. An empty input yields an empty, queryable BVH
// whose FindIntersecting always returns an empty set.
func Build(triangles []Triangle) *BVH {
	b := &BVH{triangles: triangles}
	if len(triangles) == 0 {
		return b
	}
	b.root = b.recursiveBuild(0, len(triangles))
	return b
}

func (b *BVH) recursiveBuild(start, end int) bvhNode {
	if end <= start {
		panic(invariantViolation("bvh build called with empty range [%d, %d)", start, end))
	}

	slice := b.triangles[start:end]

	box := EmptyAABB()
	for _, t := range slice {
		box = box.ExpandTriangle(t)
	}

	if end-start <= MaxTrianglesPerLeaf {
		return &leafNode{aabb: box, triangles: slice}
	}

	axis := splitAxis(box)

	sort.Slice(slice, func(i, j int) bool {
		return slice[i].Bounds().Center().Axis(axis) < slice[j].Bounds().Center().Axis(axis)
	})

	mid := start + (end-start)/2

	return &internalNode{
		aabb:  box,
		left:  b.recursiveBuild(start, mid),
		right: b.recursiveBuild(mid, end),
	}
}

// splitAxis picks the axis of greatest extent, ties broken x > y > z.
func splitAxis(box AABB) int {
	x, y, z := box.AxisExtent(0), box.AxisExtent(1), box.AxisExtent(2)
	switch {
	case x >= y && x >= z:
		return 0
	case y >= z:
		return 1
	default:
		return 2
	}
}

// FindIntersecting descends the tree against itself and returns the set of
// identifiers of every triangle that intersects at least one other triangle
// in the collection. The returned set contains no duplicates and never
// contains an identifier whose triangle does not actually intersect
// another; no triangle is reported as intersecting itself.
func (b *BVH) FindIntersecting() map[int]struct{} {
	result := make(map[int]struct{})
	if b.root == nil {
		return result
	}
	descend(b.root, b.root, result)
	return result
}

// descend is the dual-tree recursion driving pair enumeration. AABB
// disjointness prunes a subtree pair outright; two leaves are resolved by
// iterating their Cartesian product under the ID<ID dedup/self-pair guard;
// two internal nodes recurse on all four child-pair combinations (the
// (R,L) combination explores the same identifier pairs as (L,R), which the
// ID guard suppresses - visiting it twice is harmless, never required for
// correctness); a mixed pair recurses the internal node's children against
// the leaf.
func descend(a, b bvhNode, result map[int]struct{}) {
	if !Overlaps(a.bounds(), b.bounds()) {
		return
	}

	leafA, aIsLeaf := a.(*leafNode)
	leafB, bIsLeaf := b.(*leafNode)

	if aIsLeaf && bIsLeaf {
		for _, ta := range leafA.triangles {
			for _, tb := range leafB.triangles {
				if ta.ID < tb.ID && Intersect(ta, tb) {
					result[ta.ID] = struct{}{}
					result[tb.ID] = struct{}{}
				}
			}
		}
		return
	}

	if !aIsLeaf && !bIsLeaf {
		ia := a.(*internalNode)
		ib := b.(*internalNode)
		descend(ia.left, ib.left, result)
		descend(ia.left, ib.right, result)
		descend(ia.right, ib.left, result)
		descend(ia.right, ib.right, result)
		return
	}

	if !aIsLeaf {
		ia := a.(*internalNode)
		descend(ia.left, b, result)
		descend(ia.right, b, result)
		return
	}

	ib := b.(*internalNode)
	descend(a, ib.left, result)
	descend(a, ib.right, result)
}

// Dump writes a Graphviz digraph rendering of the tree to w, for debugging.
// It is not part of the core: no intersection logic depends on it.
func (b *BVH) Dump(w io.Writer) error {
	fmt.Fprint(w, "digraph {\n    rankdir = TB;\n    node [shape=record,style=filled,penwidth=2.5];\n    bgcolor = \"#FDFBE4\";\n\n")
	if b.root != nil {
		id := 0
		if err := dumpNode(w, b.root, &id); err != nil {
			return err
		}
	}
	fmt.Fprint(w, "}\n")
	return nil
}

func dumpNode(w io.Writer, node bvhNode, id *int) error {
	this := *id
	box := node.bounds()

	switch n := node.(type) {
	case *leafNode:
		_, err := fmt.Fprintf(w, "    node_%d [label=\"{ aabb: {%v, %v} | leaf: %d triangles }\"];\n",
			this, box.Min, box.Max, len(n.triangles))
		return err
	case *internalNode:
		if _, err := fmt.Fprintf(w, "    node_%d [label=\"{ aabb: {%v, %v} | internal }\"];\n", this, box.Min, box.Max); err != nil {
			return err
		}
		*id++
		leftID := *id
		if err := dumpNode(w, n.left, id); err != nil {
			return err
		}
		*id++
		rightID := *id
		if err := dumpNode(w, n.right, id); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    node_%d -> node_%d;\n    node_%d -> node_%d;\n", this, leftID, this, rightID); err != nil {
			return err
		}
		return nil
	default:
		return invariantViolation("unrecognized bvh node type in dump")
	}
}
