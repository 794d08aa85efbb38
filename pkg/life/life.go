// Package life implements Conway's Game of Life over an unbounded sparse grid.
package life

// moore lists the eight neighbour offsets of a cell.
var moore = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
}

// Neighbours counts the live cells adjacent to p. p itself is never counted.
func Neighbours(cells CellSet, p Pos) int {
	n := 0
	for _, d := range moore {
		if cells.Has(Pos{X: p.X + d.X, Y: p.Y + d.Y}) {
			n++
		}
	}
	return n
}

// Alive applies the B3/S23 rule to a cell with the given neighbour count.
func Alive(alive bool, neighbours int) bool {
	return neighbours == 3 || (alive && neighbours == 2)
}

// Step returns the next generation. Only cells adjacent to a live cell are
// evaluated; every live cell is itself a neighbour of its neighbours, so it
// is covered by the same expansion. The input is not modified.
func Step(cells CellSet) CellSet {
	next := make(CellSet, len(cells))
	visited := make(map[Pos]struct{}, len(cells)*8)
	for p := range cells {
		for _, d := range moore {
			c := Pos{X: p.X + d.X, Y: p.Y + d.Y}
			if _, seen := visited[c]; seen {
				continue
			}
			visited[c] = struct{}{}
			if Alive(cells.Has(c), Neighbours(cells, c)) {
				next.Add(c)
			}
		}
	}
	return next
}

// Run applies Step n times and returns the resulting generation.
func Run(cells CellSet, n int) CellSet {
	for i := 0; i < n; i++ {
		cells = Step(cells)
	}
	return cells
}
