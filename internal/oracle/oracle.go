// Package oracle provides a deliberately naive O(n^2) brute-force reference
// implementation of "which triangles intersect another triangle in the
// collection", used only by tests to validate geom3d.BVH against direct
// pairwise enumeration. It plays the same role the teacher library's
// capi-backed fuzz oracle plays for the Vatti engine: a second, independent
// path to the same answer that the fast path is checked against.
package oracle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/go-clipper/trintersect/geom3d"
)

// BruteForce returns the set of identifiers of every triangle that
// intersects at least one other triangle, checking every unordered pair
// exactly once via a plain nested loop.
func BruteForce(triangles []geom3d.Triangle) map[int]struct{} {
	result := make(map[int]struct{})
	for i := 0; i < len(triangles); i++ {
		for j := i + 1; j < len(triangles); j++ {
			if geom3d.Intersect(triangles[i], triangles[j]) {
				result[triangles[i].ID] = struct{}{}
				result[triangles[j].ID] = struct{}{}
			}
		}
	}
	return result
}

// pairResult is one row of the parallel brute-force scan.
type pairResult struct {
	idA, idB    int
	intersected bool
}

// BruteForceParallel computes the same result as BruteForce but fans the
// outer loop out across an errgroup-managed worker pool, one goroutine per
// row of the pair matrix. It exists to exercise a concurrency-flavored
// dependency against the kernel's documented reentrancy (geom3d's
// Intersect is a pure function of its two arguments, so this is safe): the
// core library itself stays single-threaded, and this is a test-only
// cross-check, not a production acceleration path.
func BruteForceParallel(ctx context.Context, triangles []geom3d.Triangle) (map[int]struct{}, error) {
	n := len(triangles)
	rows := make([][]pairResult, n)

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			row := make([]pairResult, 0, n-i-1)
			for j := i + 1; j < n; j++ {
				row = append(row, pairResult{
					idA:         triangles[i].ID,
					idB:         triangles[j].ID,
					intersected: geom3d.Intersect(triangles[i], triangles[j]),
				})
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[int]struct{})
	for _, row := range rows {
		for _, pr := range row {
			if pr.intersected {
				result[pr.idA] = struct{}{}
				result[pr.idB] = struct{}{}
			}
		}
	}
	return result, nil
}

// IntersectingPairs returns every unordered pair (i<j by index, not by ID)
// the brute-force scan reports as intersecting; used by the Cover property
// test to check that the BVH's result set is a superset of what any single
// confirmed pair requires.
func IntersectingPairs(triangles []geom3d.Triangle) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(triangles); i++ {
		for j := i + 1; j < len(triangles); j++ {
			if geom3d.Intersect(triangles[i], triangles[j]) {
				pairs = append(pairs, [2]int{triangles[i].ID, triangles[j].ID})
			}
		}
	}
	return pairs
}
