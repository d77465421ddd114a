package shape

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Position) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"triangle", Triangle, false},
		{"Square", Square, false},
		{" square ", Square, false},
		{"circle", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindProperties(t *testing.T) {
	if Triangle.PhaseCount() != 3 || Square.PhaseCount() != 4 {
		t.Errorf("phase counts = %d/%d, want 3/4", Triangle.PhaseCount(), Square.PhaseCount())
	}
	if Triangle.PathLength() != 600 || Square.PathLength() != 800 {
		t.Errorf("path lengths = %v/%v, want 600/800", Triangle.PathLength(), Square.PathLength())
	}
	if Kind(7).Valid() {
		t.Error("Kind(7) should be invalid")
	}
}

func TestTriangleVertices(t *testing.T) {
	v := Vertices(Triangle)
	if len(v) != 3 {
		t.Fatalf("len = %d, want 3", len(v))
	}
	// angle 0 lies straight right of the centre
	if !near(v[0], Position{X: 200 + 115.47, Y: 175}) {
		t.Errorf("v[0] = %+v", v[0])
	}
	for i, p := range v {
		r := p.Distance(Position{X: 200, Y: 175})
		if math.Abs(r-115.47) > 1e-9 {
			t.Errorf("v[%d] radius = %v, want 115.47", i, r)
		}
	}
}

func TestSquareVerticesClockwiseFromTopLeft(t *testing.T) {
	want := []Position{{100, 75}, {300, 75}, {300, 275}, {100, 275}}
	got := Vertices(Square)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("v[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVerticesStable(t *testing.T) {
	a := Vertices(Triangle)
	b := Vertices(Triangle)
	a[0].X = -1
	if b[0].X == -1 || Vertices(Triangle)[0].X == -1 {
		t.Error("Vertices must return an independent copy")
	}
}

func TestPointOnShapeEndpoints(t *testing.T) {
	for _, k := range []Kind{Triangle, Square} {
		n := k.PhaseCount()
		for p := 0; p < n; p++ {
			start, end := Edge(k, p)
			if got := PointOnShape(k, p, 0); got != start {
				t.Errorf("%v phase %d at 0 = %+v, want %+v", k, p, got, start)
			}
			if got := PointOnShape(k, p, 1); got != end {
				t.Errorf("%v phase %d at 1 = %+v, want %+v", k, p, got, end)
			}
			nextStart, _ := Edge(k, (p+1)%n)
			if got := PointOnShape(k, p, 1); got != nextStart {
				t.Errorf("%v phase %d end %+v != next start %+v", k, p, got, nextStart)
			}
		}
	}
}

func TestTriangleTraversalOrder(t *testing.T) {
	v := Vertices(Triangle)
	start, end := Edge(Triangle, 0)
	if start != v[2] || end != v[0] {
		t.Errorf("phase 0 edge = %+v -> %+v, want v2 -> v0", start, end)
	}
	start, end = Edge(Triangle, 2)
	if start != v[1] || end != v[2] {
		t.Errorf("phase 2 edge = %+v -> %+v, want v1 -> v2", start, end)
	}
}

func TestPointOnShapeMidpoint(t *testing.T) {
	got := PointOnShape(Square, 0, 0.5)
	want := Position{X: 200, Y: 75}
	if !near(got, want) {
		t.Errorf("square midpoint = %+v, want %+v", got, want)
	}
}

func TestOutlinePathStartsAtPhaseZero(t *testing.T) {
	for _, k := range []Kind{Triangle, Square} {
		path := OutlinePath(k)
		if len(path) != k.PhaseCount() {
			t.Fatalf("%v path len = %d", k, len(path))
		}
		if path[0] != PointOnShape(k, 0, 0) {
			t.Errorf("%v path start %+v != marker start %+v", k, path[0], PointOnShape(k, 0, 0))
		}
	}
}

func TestPathData(t *testing.T) {
	got := PathData(Square)
	want := "M 100 75 L 300 75 L 300 275 L 100 275 Z"
	if got != want {
		t.Errorf("PathData(Square) = %q, want %q", got, want)
	}
}

func TestPointAtDistance(t *testing.T) {
	if got := PointAtDistance(Square, 0); got != (Position{100, 75}) {
		t.Errorf("d=0 -> %+v", got)
	}
	if got := PointAtDistance(Square, 300); !near(got, Position{300, 175}) {
		t.Errorf("d=300 -> %+v", got)
	}
	if got := PointAtDistance(Square, 800+300); !near(got, Position{300, 175}) {
		t.Errorf("d=1100 should wrap -> %+v", got)
	}
	if got := PointAtDistance(Square, -100); !near(got, Position{100, 175}) {
		t.Errorf("d=-100 -> %+v", got)
	}
	// matches the marker formula for every phase
	for p := 0; p < 3; p++ {
		d := (float64(p) + 0.25) * 200
		if !near(PointAtDistance(Triangle, d), PointOnShape(Triangle, p, 0.25)) {
			t.Errorf("triangle phase %d mismatch", p)
		}
	}
}

func TestRotateAndScale(t *testing.T) {
	c := Position{X: 200, Y: 150}
	p := Position{X: 300, Y: 150}
	if got := p.Rotate(c, 90); !near(got, Position{200, 250}) {
		t.Errorf("Rotate 90 = %+v", got)
	}
	if got := p.Rotate(c, 360); !near(got, p) {
		t.Errorf("Rotate 360 = %+v", got)
	}
	if got := p.ScaleAbout(c, 1.1); math.Abs(got.X-310) > eps || got.Y != 150 {
		t.Errorf("ScaleAbout = %+v", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{-90, 270},
		{360, 0},
		{-720.5, 359.5},
		{45, 45},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
