package life

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrSourceUnavailable is returned when a pattern source cannot be read.
var ErrSourceUnavailable = errors.New("pattern source unavailable")

const (
	aliveGlyph  = '#'
	fillerGlyph = '.'
)

// Parse reads the plaintext pattern format: one row per line, '#' marks a
// live cell at (column, row) and every other character is filler. Columns
// count characters, not bytes. Empty input yields an empty set.
func Parse(text string) CellSet {
	cells := NewCellSet()
	for row, line := range strings.Split(text, "\n") {
		col := 0
		for _, r := range line {
			if r == aliveGlyph {
				cells.Add(Pos{X: int32(col), Y: int32(row)})
			}
			col++
		}
	}
	return cells
}

// Load reads and parses the pattern file at path.
func Load(path string) (CellSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	return Parse(string(data)), nil
}

// LoadFS reads and parses a pattern from fsys.
func LoadFS(fsys fs.FS, name string) (CellSet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
	}
	return Parse(string(data)), nil
}

// Format writes cells in the plaintext pattern format. The output is shifted
// so the bounding box starts at row 0, column 0; Parse(Format(s)) equals s
// translated by the negated bounding box origin.
func Format(cells CellSet) string {
	if cells.Len() == 0 {
		return ""
	}
	b := cells.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx() + 2) * (b.Dy() + 1))
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		line := make([]byte, 0, b.Dx()+1)
		for x := b.Min.X; x <= b.Max.X; x++ {
			if cells.Has(Pos{X: int32(x), Y: int32(y)}) {
				line = append(line, aliveGlyph)
				continue
			}
			line = append(line, fillerGlyph)
		}
		sb.WriteString(strings.TrimRight(string(line), string(fillerGlyph)))
		sb.WriteByte('\n')
	}
	return sb.String()
}
