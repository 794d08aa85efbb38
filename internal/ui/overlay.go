//go:build ebiten

package ui

import (
	"image/color"

	"sparse-life/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay prints the board status over the bottom-left corner of the view.
// F1 toggles it.
type Overlay struct {
	hidden bool
	lines  []string
	failed bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update captures the status to show on the next Draw.
func (o *Overlay) Update(st board.Status, paused bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.hidden = !o.hidden
	}
	o.lines = StatusLines(st, paused)
	o.failed = st.Err != nil
}

// Draw renders the status text onto screen within a view of the given height.
func (o *Overlay) Draw(screen *ebiten.Image, height int) {
	if o.hidden || len(o.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	y := height - overlayMargin - (len(o.lines)-1)*overlayLineHeight
	for i, line := range o.lines {
		col := color.Color(overlayColor)
		if o.failed && i == len(o.lines)-1 {
			col = errorColor
		}
		text.Draw(screen, line, face, overlayMargin, y, col)
		y += overlayLineHeight
	}
}

var (
	overlayColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	errorColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

const (
	overlayMargin     = 8
	overlayLineHeight = 16
)
