//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws fills onto an ebiten image.
type Painter struct {
	background color.Color
}

// NewPainter returns a painter that clears to background before drawing.
func NewPainter(background color.Color) *Painter {
	return &Painter{background: background}
}

// Draw clears dst and paints every fill that falls inside it.
func (p *Painter) Draw(dst *ebiten.Image, fills []Fill) {
	dst.Fill(p.background)
	for _, f := range Visible(fills, dst.Bounds()) {
		r := f.Rect
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), f.Color, false)
	}
}
