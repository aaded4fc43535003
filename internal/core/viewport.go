package core

import "math"

// Viewport maps world coordinates onto the cell grid of a Screen.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for a world of the given size shown on a
// cols x rows grid.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

// ToCell converts a world point into the cell that contains it.
func (v Viewport) ToCell(p Vec2) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	x := int(math.Floor(p.X * float64(v.Cols) / v.WorldW))
	y := int(math.Floor(p.Y * float64(v.Rows) / v.WorldH))
	return x, y
}

// ToWorld converts a cell into the world point at its centre.
func (v Viewport) ToWorld(x, y int) Vec2 {
	if v.Cols <= 0 || v.Rows <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (float64(x) + 0.5) * v.WorldW / float64(v.Cols),
		Y: (float64(y) + 0.5) * v.WorldH / float64(v.Rows),
	}
}

// ToRect converts a world rectangle into the cells it covers, at least one
// cell in each direction.
func (v Viewport) ToRect(r RectF) Rect {
	x0, y0 := v.ToCell(Vec2{X: r.X, Y: r.Y})
	x1, y1 := v.ToCell(Vec2{X: r.Right(), Y: r.Bottom()})
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
