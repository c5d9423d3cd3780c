package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

// Viewport maps the playfield onto terminal cells
// The bottom BottomMargin rows are reserved for the status line
type Viewport struct {
	Cols, Rows int
	World      physics.Bounds
}

// NewViewport creates a mapping for a terminal of cols x rows cells
func NewViewport(cols, rows int, world physics.Bounds) Viewport {
	return Viewport{Cols: cols, Rows: rows, World: world}
}

// PlayRows returns the rows available to the playfield
func (v Viewport) PlayRows() int {
	rows := v.Rows - parameter.BottomMargin
	if rows < 1 {
		return 1
	}
	return rows
}

// CellSize returns the world size of one cell
func (v Viewport) CellSize() r2.Point {
	cols := v.Cols
	if cols < 1 {
		cols = 1
	}
	return r2.Point{X: v.World.Width / float64(cols), Y: v.World.Height / float64(v.PlayRows())}
}

// ToCell returns the cell containing p, ok is false outside the playfield area
func (v Viewport) ToCell(p r2.Point) (col, row int, ok bool) {
	size := v.CellSize()
	col = int(math.Floor(p.X / size.X))
	row = int(math.Floor(p.Y / size.Y))

	// Far edge belongs to the last cell
	if p.X == v.World.Width {
		col = v.Cols - 1
	}
	if p.Y == v.World.Height {
		row = v.PlayRows() - 1
	}
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.PlayRows()
	return col, row, ok
}

// ToPlayfield returns the world position of a cell centre
// Cells outside the grid map outside the playfield
func (v Viewport) ToPlayfield(col, row int) r2.Point {
	size := v.CellSize()
	return r2.Point{
		X: (float64(col) + 0.5) * size.X,
		Y: (float64(row) + 0.5) * size.Y,
	}
}
