package rules

// Cells is any fixed-shape boolean grid. Get must report false for
// coordinates outside [0, width) x [0, height).
type Cells interface {
	GetWidth() int
	GetHeight() int
	Get(x, y int) bool
}

// NeighborCounter counts the live neighbors of the cell at (x, y).
type NeighborCounter interface {
	CountNeighbors(x, y int) int
}

// Moore counts neighbors over the 8-cell Moore neighborhood of any Cells.
// The grid edge is a hard boundary: cells past it contribute nothing.
type Moore struct {
	Cells
}

// CountNeighbors returns the number of live cells adjacent to (x, y),
// never counting (x, y) itself.
func (m Moore) CountNeighbors(x, y int) int {
	var (
		minX = max(0, x-1)
		maxX = min(m.GetWidth()-1, x+1)
		minY = max(0, y-1)
		maxY = min(m.GetHeight()-1, y+1)

		count int
	)
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if m.Get(nx, ny) {
				count++
			}
		}
	}
	return count
}

// NextState evaluates the Conway rule for (x, y) against a read-only source.
func NextState(src Cells, counter NeighborCounter, x, y int) bool {
	return ApplyConwayRules(counter.CountNeighbors(x, y), src.Get(x, y))
}
