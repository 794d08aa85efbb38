package board

import (
	"image"

	"sparse-life/pkg/life"
)

// View maps logical cells onto screen pixels.
type View struct {
	CellSize int
	PanX     int
	PanY     int
	// Viewport is the screen area cells are drawn into.
	Viewport image.Rectangle
}

// CellSize picks a square cell edge from the larger viewport dimension so
// that boardSize cells span it.
func CellSize(viewport image.Rectangle, boardSize int) int {
	if boardSize <= 0 {
		return 0
	}
	return max(viewport.Dx(), viewport.Dy()) / boardSize
}

// Center shifts cells so their bounding box sits in the middle of a
// boardSize x boardSize window. Patterns larger than the window are not
// clamped and may end up at negative coordinates.
func Center(cells life.CellSet, boardSize int) life.CellSet {
	if cells.Len() == 0 {
		return life.NewCellSet()
	}
	b := cells.Bounds()
	dx := boardSize/2 - (b.Max.X-b.Min.X)/2
	dy := boardSize/2 - (b.Max.Y-b.Min.Y)/2
	return cells.Translate(int32(dx), int32(dy))
}

// Project returns the screen rectangle covered by p.
func (v View) Project(p life.Pos) image.Rectangle {
	topLeft := v.Viewport.Min.Add(image.Pt(int(p.X)*v.CellSize-v.PanX, int(p.Y)*v.CellSize-v.PanY))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(v.CellSize, v.CellSize))}
}

// ProjectAll projects cells in row-major order.
func (v View) ProjectAll(cells life.CellSet) []image.Rectangle {
	out := make([]image.Rectangle, 0, cells.Len())
	for _, p := range cells.Positions() {
		out = append(out, v.Project(p))
	}
	return out
}
