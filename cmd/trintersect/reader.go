package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-clipper/trintersect/geom3d"
)

// tokenReader pulls whitespace-delimited tokens off r, spanning any number
// of lines - the format makes no distinction between "one triangle per
// line" and "all coordinates on one line".
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

func (tr *tokenReader) next() (string, bool) {
	if !tr.scanner.Scan() {
		return "", false
	}
	return tr.scanner.Text(), true
}

// readTriangles decodes the CLI's input format: a line 1 triangle count N,
// followed by nine decimal numbers per triangle (x0 y0 z0 x1 y1 z1 x2 y2
// z2), whitespace- and newline-insensitive. Triangle identifiers are
// assigned as 0-based input order. Any malformed or missing token fails
// with the index of the triangle that was being parsed when it happened.
func readTriangles(r io.Reader) ([]geom3d.Triangle, error) {
	tr := newTokenReader(r)

	nTok, ok := tr.next()
	if !ok {
		return nil, errors.New("reading triangle count: unexpected end of input")
	}
	n, err := strconv.Atoi(nTok)
	if err != nil {
		return nil, errors.Wrap(err, "parsing triangle count")
	}
	if n < 0 {
		return nil, errors.Errorf("triangle count must be non-negative, got %d", n)
	}

	triangles := make([]geom3d.Triangle, 0, n)
	for i := 0; i < n; i++ {
		tri, err := readOneTriangle(tr, i)
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %d", i)
		}
		triangles = append(triangles, tri)
	}

	return triangles, nil
}

func readOneTriangle(tr *tokenReader, id int) (geom3d.Triangle, error) {
	var coords [9]float64
	for i := range coords {
		tok, ok := tr.next()
		if !ok {
			return geom3d.Triangle{}, errors.Errorf("missing coordinate %d of 9", i)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return geom3d.Triangle{}, errors.Wrapf(err, "parsing coordinate %d (%q)", i, tok)
		}
		coords[i] = v
	}

	return geom3d.Triangle{
		P0: geom3d.Point{X: coords[0], Y: coords[1], Z: coords[2]},
		P1: geom3d.Point{X: coords[3], Y: coords[4], Z: coords[5]},
		P2: geom3d.Point{X: coords[6], Y: coords[7], Z: coords[8]},
		ID: id,
	}, nil
}
