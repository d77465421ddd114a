package canvas

import (
	"math"
	"strings"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	colorOutline    = "#1F4E5F"
	colorTrailTail  = "#2E86AB"
	colorTrailHead  = "#A8E6FF"
	colorMarkerDim  = "#3C6E71"
	colorMarkerGlow = "#F0FFFF"
	colorRipple     = "#5FA8D3"
	colorPivot      = "#24414D"

	styleOutline = lipgloss.NewStyle().Foreground(lipgloss.Color(colorOutline))
	styleRipple  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRipple))
	stylePivot   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPivot))
)

type layer int

const (
	layerEmpty layer = iota
	layerOutline
	layerTrail
	layerRipple
	layerMarker
)

type cell struct {
	layer layer
	ch    rune
	fade  float64 // trail brightness, 1 at the head
}

// Render draws one frame onto a width x height cell grid. The outline, trail
// and marker are scaled and rotated about the canvas pivot; the trail is only
// shown while the session is active.
func Render(width, height int, f animation.Frame) string {
	if width < 10 || height < 5 {
		return ""
	}

	vp := NewViewport(width, height)
	grid := rasterize(vp, f)

	pivot := shape.Position{X: config.RotateCenterX, Y: config.RotateCenterY}
	pc, pr := vp.Cell(pivot)
	markerColor := glowColor(f.GlowIntensity)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := grid[row][col]
			switch c.layer {
			case layerMarker:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(markerColor)).Bold(true).Render("●"))
			case layerRipple:
				sb.WriteString(styleRipple.Render("·"))
			case layerTrail:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(trailColor(c.fade))).Bold(c.fade > 0.6).Render(string(c.ch)))
			case layerOutline:
				sb.WriteString(styleOutline.Render(string(c.ch)))
			default:
				if col == pc && row == pr {
					sb.WriteString(stylePivot.Render("+"))
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func rasterize(vp Viewport, f animation.Frame) [][]cell {
	grid := make([][]cell, vp.Height)
	for r := range grid {
		grid[r] = make([]cell, vp.Width)
	}

	pivot := shape.Position{X: config.RotateCenterX, Y: config.RotateCenterY}
	project := func(p shape.Position) shape.Position {
		return p.ScaleAbout(pivot, f.Scale).Rotate(pivot, f.RotationDegrees)
	}

	drawOutline(grid, vp, f, project)
	marker := project(f.Position)
	if f.PulseVisible {
		drawRing(grid, vp, marker, config.RippleMaxRadius*f.Scale)
	}
	drawMarker(grid, vp, marker, f.MarkerRadius*f.Scale)
	return grid
}

// drawOutline walks the outline by path distance so every cell knows how far
// along the path it is; that distance decides trail membership.
func drawOutline(grid [][]cell, vp Viewport, f animation.Frame, project func(shape.Position) shape.Position) {
	L := f.Shape.PathLength()
	step := math.Max(vp.CellWidth()/4, 0.25)

	for s := 0.0; s < L; s += step {
		p := project(shape.PointAtDistance(f.Shape, s))
		q := project(shape.PointAtDistance(f.Shape, s+step))
		col, row := vp.Cell(p)
		if !vp.Contains(col, row) {
			continue
		}

		c := &grid[row][col]
		ch := StrokeChar(q.X-p.X, q.Y-p.Y)

		if f.Active {
			if fade := f.Trail.Fade(s); fade > 0 {
				if c.layer < layerTrail || fade > c.fade {
					*c = cell{layer: layerTrail, ch: ch, fade: fade}
				}
				continue
			}
		}
		if c.layer < layerOutline {
			*c = cell{layer: layerOutline, ch: ch}
		}
	}
}

func drawMarker(grid [][]cell, vp Viewport, center shape.Position, radius float64) {
	paint(grid, vp, func(p shape.Position) bool {
		return p.Distance(center) <= radius
	}, layerMarker)

	// always show at least the centre cell
	col, row := vp.Cell(center)
	if vp.Contains(col, row) {
		grid[row][col] = cell{layer: layerMarker}
	}
}

func drawRing(grid [][]cell, vp Viewport, center shape.Position, radius float64) {
	half := vp.CellWidth()
	paint(grid, vp, func(p shape.Position) bool {
		return math.Abs(p.Distance(center)-radius) <= half
	}, layerRipple)
}

func paint(grid [][]cell, vp Viewport, hit func(shape.Position) bool, l layer) {
	for row := range grid {
		for col := range grid[row] {
			if grid[row][col].layer > l {
				continue
			}
			if hit(vp.Point(col, row)) {
				grid[row][col] = cell{layer: l}
			}
		}
	}
}

// glowColor blends the marker from dim to bright by glow intensity.
func glowColor(glow float64) string {
	return blend(colorMarkerDim, colorMarkerGlow, glow)
}

func trailColor(fade float64) string {
	return blend(colorTrailTail, colorTrailHead, fade)
}

func blend(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
