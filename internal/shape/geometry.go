package shape

import (
	"fmt"
	"math"
	"strings"

	"breathe.klederson.com/internal/config"
)

// Kind is the polygon the marker travels around.
type Kind int

const (
	Triangle Kind = iota
	Square
)

// String returns the lowercase shape name used in flags and presets.
func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("shape(%d)", int(k))
	}
}

// Parse maps a shape name to its Kind.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "triangle":
		return Triangle, nil
	case "square":
		return Square, nil
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Valid reports whether k is a known shape.
func (k Kind) Valid() bool {
	return k == Triangle || k == Square
}

// PhaseCount is the number of breathing phases, one per edge.
func (k Kind) PhaseCount() int {
	if k == Square {
		return 4
	}
	return 3
}

// PathLength is the normalised outline length used for trail math.
func (k Kind) PathLength() float64 {
	if k == Square {
		return config.SquarePathLength
	}
	return config.TrianglePathLength
}

// Position is a point in canvas coordinates.
type Position struct {
	X, Y float64
}

// Lerp interpolates from p to q. The result is exact at t=0 and t=1.
func (p Position) Lerp(q Position, t float64) Position {
	return Position{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Rotate turns p around c by deg degrees (positive is clockwise on screen,
// since canvas y grows downward).
func (p Position) Rotate(c Position, deg float64) Position {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Position{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// ScaleAbout scales p relative to c.
func (p Position) ScaleAbout(c Position, s float64) Position {
	return Position{
		X: c.X + (p.X-c.X)*s,
		Y: c.Y + (p.Y-c.Y)*s,
	}
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

var (
	triangleAngles = [3]float64{0, 120, 240}

	// Clockwise from top-left.
	squarePoints = [4]Position{
		{X: 100, Y: 75},
		{X: 300, Y: 75},
		{X: 300, Y: 275},
		{X: 100, Y: 275},
	}

	triangleVertices = buildTriangle()
)

func buildTriangle() [3]Position {
	var pts [3]Position
	for i, deg := range triangleAngles {
		rad := deg * math.Pi / 180
		pts[i] = Position{
			X: config.TriangleCenterX + config.TriangleRadius*math.Cos(rad),
			Y: config.TriangleCenterY + config.TriangleRadius*math.Sin(rad),
		}
	}
	return pts
}

// Vertices returns the polygon corners in layout order.
func Vertices(k Kind) []Position {
	if k == Square {
		out := squarePoints
		return out[:]
	}
	out := triangleVertices
	return out[:]
}

// Edge returns the start and end vertex traversed during phase.
// Triangle phase p runs vertex[(p+2)%3] -> vertex[p]; square phase p runs
// vertex[p] -> vertex[(p+1)%4].
func Edge(k Kind, phase int) (start, end Position) {
	if k == Square {
		p := mod(phase, 4)
		return squarePoints[p], squarePoints[(p+1)%4]
	}
	p := mod(phase, 3)
	return triangleVertices[(p+2)%3], triangleVertices[p]
}

// PointOnShape places the marker on the edge for phase at the given
// intra-phase progress.
func PointOnShape(k Kind, phase int, progress float64) Position {
	start, end := Edge(k, phase)
	return start.Lerp(end, progress)
}

// OutlinePath returns the closed polygon in traversal order, starting at the
// phase 0 start vertex so path distance 0 matches the marker at t=0.
func OutlinePath(k Kind) []Position {
	n := k.PhaseCount()
	path := make([]Position, n)
	for p := 0; p < n; p++ {
		path[p], _ = Edge(k, p)
	}
	return path
}

// PathData renders the outline as an SVG path string ("M x y L ... Z").
func PathData(k Kind) string {
	var sb strings.Builder
	for i, p := range OutlinePath(k) {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		fmt.Fprintf(&sb, "%g %g", p.X, p.Y)
	}
	sb.WriteString(" Z")
	return sb.String()
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// PointAtDistance maps a distance along the normalised outline to a canvas
// position. Distances wrap modulo the path length, so any real value is valid.
func PointAtDistance(k Kind, dist float64) Position {
	L := k.PathLength()
	n := k.PhaseCount()
	edgeLen := L / float64(n)

	d := math.Mod(dist, L)
	if d < 0 {
		d += L
	}
	phase := int(d / edgeLen)
	if phase >= n {
		phase = n - 1
	}
	return PointOnShape(k, phase, (d-float64(phase)*edgeLen)/edgeLen)
}
