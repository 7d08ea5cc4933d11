package geom3d

import "testing"

func TestTriangleType(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want ShapeType
	}{
		{
			name: "normal triangle",
			tri:  Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{0, 1, 0}},
			want: TypeNormal,
		},
		{
			name: "collapsed to point",
			tri:  Triangle{P0: Point{1, 1, 1}, P1: Point{1, 1, 1}, P2: Point{1, 1, 1}},
			want: TypePoint,
		},
		{
			name: "collapsed to segment, collinear distinct vertices",
			tri:  Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{2, 0, 0}},
			want: TypeSegment,
		},
		{
			name: "collapsed to segment, repeated endpoint",
			tri:  Triangle{P0: Point{0, 0, 0}, P1: Point{0, 0, 0}, P2: Point{2, 0, 0}},
			want: TypeSegment,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tri.Type(); got != tc.want {
				t.Errorf("Type() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{P0: Point{0, 5, -1}, P1: Point{3, -2, 4}, P2: Point{-1, 1, 0}}
	bounds := tri.Bounds()

	want := AABB{Min: Point{-1, -2, -1}, Max: Point{3, 5, 4}}
	if bounds != want {
		t.Errorf("Bounds() = %v, want %v", bounds, want)
	}
}

func TestToSegmentPicksFarthestEndpoints(t *testing.T) {
	// Collinear points at x=0,1,3: farthest pair is (0,0,0)-(3,0,0).
	tri := Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{3, 0, 0}, ID: 1}
	seg := tri.toSegment()

	if !((seg.P0.ApproxEqual(Point{0, 0, 0}) && seg.P1.ApproxEqual(Point{3, 0, 0})) ||
		(seg.P1.ApproxEqual(Point{0, 0, 0}) && seg.P0.ApproxEqual(Point{3, 0, 0}))) {
		t.Errorf("toSegment() = %v, want endpoints (0,0,0) and (3,0,0)", seg)
	}
}

func TestClassifyDispatchesOnType(t *testing.T) {
	normal := Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{0, 1, 0}}
	if _, ok := Classify(normal).(TriangleShape); !ok {
		t.Errorf("Classify(normal triangle) did not yield TriangleShape")
	}

	point := Triangle{P0: Point{1, 1, 1}, P1: Point{1, 1, 1}, P2: Point{1, 1, 1}}
	if _, ok := Classify(point).(PointShape); !ok {
		t.Errorf("Classify(point triangle) did not yield PointShape")
	}

	seg := Triangle{P0: Point{0, 0, 0}, P1: Point{1, 0, 0}, P2: Point{2, 0, 0}}
	if _, ok := Classify(seg).(SegmentShape); !ok {
		t.Errorf("Classify(segment triangle) did not yield SegmentShape")
	}
}
