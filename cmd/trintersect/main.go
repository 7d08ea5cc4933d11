// Command trintersect reads a collection of 3-D triangles from standard
// input and reports the identifiers of every triangle that intersects at
// least one other triangle in the collection.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/go-clipper/trintersect/geom3d"
)

func main() {
	app := &cli.App{
		Name:  "trintersect",
		Usage: "report which triangles in a collection intersect another triangle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dump",
				Usage: "write a Graphviz rendering of the BVH to `FILE`",
			},
			&cli.Float64Flag{
				Name:  "epsilon",
				Usage: "override the numerical tolerance used for intersection tests",
				Value: geom3d.Epsilon,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		reportAndExit(err)
	}
}

func run(c *cli.Context) error {
	geom3d.Epsilon = c.Float64("epsilon")

	triangles, err := readTriangles(os.Stdin)
	if err != nil {
		return err
	}

	bvh := buildSafely(triangles)

	if dumpPath := c.String("dump"); dumpPath != "" {
		if err := writeDump(bvh, dumpPath); err != nil {
			return errors.Wrap(err, "writing bvh dump")
		}
	}

	ids := sortedIDs(bvh.FindIntersecting())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

// buildSafely recovers an InvariantError panic from the core during the
// build, reports it on standard error and exits with status 1, so the
// process's only recovery point is this CLI boundary - the library itself
// never recovers.
func buildSafely(triangles []geom3d.Triangle) (result *geom3d.BVH) {
	defer func() {
		if r := recover(); r != nil {
			reportAndExit(fmt.Errorf("%v", r))
		}
	}()
	return geom3d.Build(triangles)
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func writeDump(bvh *geom3d.BVH, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bvh.Dump(f)
}

func reportAndExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
