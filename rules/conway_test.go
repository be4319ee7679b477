package rules

import "testing"

type sliceCells [][]bool

func (s sliceCells) GetWidth() int  { return len(s[0]) }
func (s sliceCells) GetHeight() int { return len(s) }
func (s sliceCells) Get(x, y int) bool {
	if y < 0 || y >= len(s) || x < 0 || x >= len(s[y]) {
		return false
	}
	return s[y][x]
}

func full(w, h int) sliceCells {
	cells := make(sliceCells, h)
	for y := range cells {
		cells[y] = make([]bool, w)
		for x := range cells[y] {
			cells[y][x] = true
		}
	}
	return cells
}

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Fatalf("alive with %d neighbors: got %v want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Fatalf("dead with %d neighbors: got %v want %v", n, got, wantBorn)
		}
	}
}

func TestMooreCountNeighborsFullGrid(t *testing.T) {
	m := Moore{full(3, 3)}
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3}, {2, 0, 3}, {0, 2, 3}, {2, 2, 3},
		{1, 0, 5}, {0, 1, 5}, {2, 1, 5}, {1, 2, 5},
		{1, 1, 8},
	}
	for _, tc := range cases {
		if got := m.CountNeighbors(tc.x, tc.y); got != tc.want {
			t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMooreExcludesSelf(t *testing.T) {
	cells := sliceCells{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	}
	if got := (Moore{cells}).CountNeighbors(1, 1); got != 0 {
		t.Fatalf("lone live cell counted %d neighbors, want 0", got)
	}
}

func TestMooreNoWrap(t *testing.T) {
	// Live cells on the far edge must not be seen from the opposite edge.
	cells := sliceCells{
		{false, false, false, true},
		{false, false, false, true},
		{false, false, false, true},
	}
	if got := (Moore{cells}).CountNeighbors(0, 1); got != 0 {
		t.Fatalf("left edge saw %d neighbors through the right edge", got)
	}
}

func TestMooreSingleCell(t *testing.T) {
	for _, alive := range []bool{true, false} {
		cells := sliceCells{{alive}}
		m := Moore{cells}
		if got := m.CountNeighbors(0, 0); got != 0 {
			t.Fatalf("1x1 grid counted %d neighbors", got)
		}
		if NextState(cells, m, 0, 0) {
			t.Fatalf("1x1 grid (alive=%v) survived", alive)
		}
	}
}
