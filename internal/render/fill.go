package render

import (
	"image"
	"image/color"
)

// Fill is one solid rectangle handed to a painter.
type Fill struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Fills pairs every rectangle with the same colour, preserving order.
func Fills(rects []image.Rectangle, c color.Color) []Fill {
	col := toRGBA(c)
	out := make([]Fill, 0, len(rects))
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		out = append(out, Fill{Rect: r, Color: col})
	}
	return out
}

// Visible drops fills that do not intersect clip.
func Visible(fills []Fill, clip image.Rectangle) []Fill {
	out := fills[:0:0]
	for _, f := range fills {
		if f.Rect.Overlaps(clip) {
			out = append(out, f)
		}
	}
	return out
}

// toRGBA converts any colour to 8-bit premultiplied RGBA.
func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
