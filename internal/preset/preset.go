// Package preset fills a room with ready-made furniture arrangements.
package preset

import (
	"classroom-planner/internal/geom"
	"classroom-planner/internal/scene"
)

// RowOptions controls classroom row generation. Spacing and margin are in
// feet; MaxCols and MaxRows cap the block regardless of room size.
type RowOptions struct {
	MaxCols      int
	MaxRows      int
	ColSpacingFt float64
	RowSpacingFt float64
	MarginFt     float64
}

// DefaultRowOptions returns the standard classroom block.
func DefaultRowOptions() RowOptions {
	return RowOptions{
		MaxCols:      6,
		MaxRows:      4,
		ColSpacingFt: 3,
		RowSpacingFt: 4,
		MarginFt:     2,
	}
}

// GenerateRows places rows of desks facing the blackboard wall, one chair
// behind each desk, centered on the room. Every position goes through the
// scene's snap and clamp, so the block lands on grid cells and never leaves
// the bounds. Returns the number of desk/chair pairs placed.
func GenerateRows(s *scene.Scene, opts RowOptions) int {
	if opts.MaxCols <= 0 {
		opts.MaxCols = 6
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = 4
	}
	if opts.ColSpacingFt <= 0 {
		opts.ColSpacingFt = 3
	}
	if opts.RowSpacingFt <= 0 {
		opts.RowSpacingFt = 4
	}
	if opts.MarginFt < 0 {
		opts.MarginFt = 0
	}

	colStep := opts.ColSpacingFt * scene.UnitsPerFoot
	rowStep := opts.RowSpacingFt * scene.UnitsPerFoot
	margin := opts.MarginFt * scene.UnitsPerFoot

	cols := fit(s.Bounds.Width-2*margin, colStep)
	rows := fit(s.Bounds.Depth-2*margin, rowStep)
	if cols > opts.MaxCols {
		cols = opts.MaxCols
	}
	if rows > opts.MaxRows {
		rows = opts.MaxRows
	}
	if cols == 0 || rows == 0 {
		return 0
	}

	// Center the block around the origin. Chairs trail their desks by half
	// a row step toward the back wall.
	startX := -float64(cols-1) * colStep / 2
	startZ := -float64(rows-1) * rowStep / 2
	chairBack := rowStep / 2

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := startX + float64(c)*colStep
			z := startZ + float64(r)*rowStep
			s.Place(scene.KindDesk, s.Clamp(scene.Snap(geom.Pt(x, 0, z))), 0)
			s.Place(scene.KindChair, s.Clamp(scene.Snap(geom.Pt(x, 0, z+chairBack))), 180)
		}
	}
	return rows * cols
}

// fit returns how many points a step apart fit inside span.
func fit(span, step float64) int {
	if span < 0 {
		return 0
	}
	return int(span/step) + 1
}
