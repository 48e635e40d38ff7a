package graphics

import (
	"fmt"
	"image"
)

// Grid places equally sized cells row by row, Columns per row.
type Grid struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Columns    int `json:"columns"`
	CellWidth  int `json:"cellWidth"`
	CellHeight int `json:"cellHeight"`
	Margin     struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"margin"`
}

// NewGrid returns a grid with the given origin, column count, cell size and
// gaps between cells.
func NewGrid(x, y, columns, cellWidth, cellHeight, marginX, marginY int) Grid {
	g := Grid{X: x, Y: y, Columns: columns, CellWidth: cellWidth, CellHeight: cellHeight}
	g.Margin.X = marginX
	g.Margin.Y = marginY
	return g
}

func (g Grid) validate() error {
	if g.Columns <= 0 {
		return fmt.Errorf("columns must be greater than 0")
	}
	if g.CellWidth < 0 || g.CellHeight < 0 {
		return fmt.Errorf("cell size must be greater than or equal to 0")
	}
	return nil
}

// Origin returns the top-left corner of cell i.
func (g Grid) Origin(i int) image.Point {
	if g.validate() != nil || i < 0 {
		return image.Pt(g.X, g.Y)
	}
	col := i % g.Columns
	row := i / g.Columns
	return image.Pt(
		g.X+col*(g.CellWidth+g.Margin.X),
		g.Y+row*(g.CellHeight+g.Margin.Y),
	)
}

// Cell returns the rectangle of cell i with inclusive corners, ready to be
// styled and drawn.
func (g Grid) Cell(i int) Rect {
	o := g.Origin(i)
	return Rect{X0: o.X, Y0: o.Y, X1: o.X + g.CellWidth, Y1: o.Y + g.CellHeight}
}
