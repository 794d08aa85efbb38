package life

import (
	"cmp"
	"image"
	"slices"
)

// Pos addresses a single cell on the unbounded grid.
type Pos struct {
	X, Y int32
}

// CellSet holds the live cells of one generation. Dead cells are never stored.
type CellSet map[Pos]struct{}

// NewCellSet returns a set containing the provided positions.
func NewCellSet(ps ...Pos) CellSet {
	s := make(CellSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add marks p alive.
func (s CellSet) Add(p Pos) { s[p] = struct{}{} }

// Has reports whether p is alive.
func (s CellSet) Has(p Pos) bool {
	_, ok := s[p]
	return ok
}

// Len returns the population.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same positions.
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Has(p) {
			return false
		}
	}
	return true
}

// Translate returns a new set with every cell shifted by (dx, dy).
func (s CellSet) Translate(dx, dy int32) CellSet {
	out := make(CellSet, len(s))
	for p := range s {
		out[Pos{X: p.X + dx, Y: p.Y + dy}] = struct{}{}
	}
	return out
}

// Bounds returns the inclusive bounding box of the live cells as a rectangle
// whose Max corner is the largest occupied coordinate. An empty set yields
// the zero rectangle.
func (s CellSet) Bounds() image.Rectangle {
	first := true
	var b image.Rectangle
	for p := range s {
		x, y := int(p.X), int(p.Y)
		if first {
			b = image.Rect(x, y, x, y)
			first = false
			continue
		}
		b.Min.X = min(b.Min.X, x)
		b.Min.Y = min(b.Min.Y, y)
		b.Max.X = max(b.Max.X, x)
		b.Max.Y = max(b.Max.Y, y)
	}
	return b
}

// Positions returns the live cells in row-major order (y, then x).
func (s CellSet) Positions() []Pos {
	out := make([]Pos, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Pos) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}
