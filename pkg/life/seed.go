package life

// Sampler draws uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Sampler interface {
	IntN(n int) int
}

// Seed samples every coordinate of the square [0, size] x [0, size] and keeps
// it alive when a draw from {1, 2, 3} comes up 1, i.e. with probability 1/3.
// A negative size yields an empty set.
func Seed(size int, s Sampler) CellSet {
	cells := NewCellSet()
	for x := 0; x <= size; x++ {
		for y := 0; y <= size; y++ {
			if s.IntN(3)+1 == 1 {
				cells.Add(Pos{X: int32(x), Y: int32(y)})
			}
		}
	}
	return cells
}
