package canvas

import (
	"math"

	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
)

// Viewport maps canvas coordinates onto a terminal cell grid, keeping the
// drawing centred and correcting for the tall aspect of terminal cells.
type Viewport struct {
	Width, Height int
	unitX, unitY  float64 // cells per canvas unit
	offX, offY    float64
}

// NewViewport fits the canvas into width x height cells.
func NewViewport(width, height int) Viewport {
	ux := float64(width) / config.CanvasWidth
	uy := float64(height) / (config.CanvasHeight * config.AspectRatio)
	u := math.Min(ux, uy)

	v := Viewport{
		Width:  width,
		Height: height,
		unitX:  u,
		unitY:  u * config.AspectRatio,
	}
	v.offX = (float64(width) - config.CanvasWidth*v.unitX) / 2
	v.offY = (float64(height) - config.CanvasHeight*v.unitY) / 2
	return v
}

// Cell converts a canvas position to the cell containing it.
func (v Viewport) Cell(p shape.Position) (col, row int) {
	col = int(math.Floor(v.offX + p.X*v.unitX))
	row = int(math.Floor(v.offY + p.Y*v.unitY))
	return col, row
}

// Point returns the canvas position at the centre of a cell.
func (v Viewport) Point(col, row int) shape.Position {
	return shape.Position{
		X: (float64(col) + 0.5 - v.offX) / v.unitX,
		Y: (float64(row) + 0.5 - v.offY) / v.unitY,
	}
}

// CellWidth is the canvas distance covered by one column.
func (v Viewport) CellWidth() float64 {
	if v.unitX == 0 {
		return 0
	}
	return 1 / v.unitX
}

// Contains reports whether a cell lies on the grid.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}

// StrokeChar picks a line character for a segment heading in the given
// screen direction (y grows downward).
func StrokeChar(dx, dy float64) rune {
	// compare in cell space so the glyph matches what is drawn
	a := math.Atan2(dy*config.AspectRatio, dx)
	if a < 0 {
		a += math.Pi
	}
	if a >= math.Pi {
		a -= math.Pi
	}

	switch sector := int(math.Round(a/(math.Pi/4))) % 4; sector {
	case 0:
		return '-'
	case 1:
		return '\\'
	case 2:
		return '|'
	default:
		return '/'
	}
}
