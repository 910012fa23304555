package resource

import "slices"

// Grid is a fixed-size boolean occupancy matrix owned by a spatial container.
// A cell is true iff it is covered by exactly one child's placed rectangle.
// The size is fixed at construction and never changes.
//
// Coordinates are (x, y) with x indexing rows in [0, Rows) and y indexing
// columns in [0, Cols). Mutation is unexported: only the owning
// SpatialResource marks and clears cells.
type Grid struct {
	rows  int
	cols  int
	cells []bool // row-major: cells[x*cols+y]
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows (x extent).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (y extent).
func (g *Grid) Cols() int { return g.cols }

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int { return len(g.cells) }

// At reports whether the cell at (x, y) is occupied.
// Out-of-bounds coordinates report false.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.rows || y < 0 || y >= g.cols {
		return false
	}
	return g.cells[x*g.cols+y]
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// IsFull reports whether no unoccupied cell exists anywhere.
// This is a coarse 1x1-cell check; it does not guarantee larger shapes fit.
func (g *Grid) IsFull() bool {
	for _, c := range g.cells {
		if !c {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no occupied cell exists.
func (g *Grid) IsEmpty() bool {
	for _, c := range g.cells {
		if c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: slices.Clone(g.cells),
	}
}

// Equal reports whether g and other have identical size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols && slices.Equal(g.cells, other.cells)
}

// vacant reports whether the rectangle [x,x+l)×[y,y+w) lies within the grid
// and every cell in it is unoccupied. A zero-area rectangle is vacant at any
// in-bounds anchor.
func (g *Grid) vacant(x, y, l, w int) bool {
	if x < 0 || y < 0 || x+l > g.rows || y+w > g.cols {
		return false
	}
	for i := x; i < x+l; i++ {
		for j := y; j < y+w; j++ {
			if g.cells[i*g.cols+j] {
				return false
			}
		}
	}
	return true
}

// fill sets every cell of the rectangle [x,x+l)×[y,y+w) to v.
// The rectangle must be in bounds.
func (g *Grid) fill(x, y, l, w int, v bool) {
	for i := x; i < x+l; i++ {
		for j := y; j < y+w; j++ {
			g.cells[i*g.cols+j] = v
		}
	}
}

// boundingWaste returns the unused cell area inside the minimal bounding
// rectangle enclosing all occupied cells. An empty grid has zero waste.
func (g *Grid) boundingWaste() int {
	minX, minY := g.rows, g.cols
	maxX, maxY := -1, -1
	occupied := 0

	for x := 0; x < g.rows; x++ {
		for y := 0; y < g.cols; y++ {
			if !g.cells[x*g.cols+y] {
				continue
			}
			occupied++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if occupied == 0 {
		return 0
	}
	area := (maxX - minX + 1) * (maxY - minY + 1)
	return area - occupied
}
