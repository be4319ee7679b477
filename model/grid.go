package model

import "github.com/sheikhrachel/go-gol-term/rules"

// Grid is a fixed-shape rectangular board; true cells are alive.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// bounds is an inclusive bounding box of live cells
type bounds struct {
	minX, maxX, minY, maxY int
}

var (
	_ rules.Cells           = (*Grid)(nil)
	_ rules.NeighborCounter = (*Grid)(nil)
)

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// FromRows builds a grid from equal-length rows. The rows are copied.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &ShapeError{Row: 0, Want: 1, Got: 0, Detail: "grid has no rows"}
	}
	width := len(rows[0])
	if width == 0 {
		return nil, &ShapeError{Row: 0, Want: 1, Got: 0, Detail: "grid has no columns"}
	}

	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Row: y, Want: width, Got: len(row), Detail: "row length differs from first row"}
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Get returns the state of a cell; anything off the board is dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts the live Moore neighbors of (x, y) with the edge as a hard boundary
func (g *Grid) CountNeighbors(x, y int) int {
	return rules.Moore{Cells: g}.CountNeighbors(x, y)
}

// Clone returns a deep copy sharing no row storage with g
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// liveBounds returns the bounding box of living cells, or false when none are alive
func (g *Grid) liveBounds() (b bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y}
				ok = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return b, ok
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := g.liveBounds()
	if !ok {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}
