package life

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		text string
		want CellSet
	}{
		{"corner", "##\n.#", NewCellSet(Pos{0, 0}, Pos{1, 0}, Pos{1, 1})},
		{"empty", "", NewCellSet()},
		{"only filler", "...\n   \n\n", NewCellSet()},
		{"blank rows keep index", "#\n\n\n  #", NewCellSet(Pos{0, 0}, Pos{2, 3})},
		{"crlf", "#.#\r\n.#.\r\n", NewCellSet(Pos{0, 0}, Pos{2, 0}, Pos{1, 1})},
		{"multibyte filler", "é#", NewCellSet(Pos{1, 0})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.text)
			if !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %v, expected %v", tc.text, got.Positions(), tc.want.Positions())
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"glider.txt": {Data: []byte(".#.\n..#\n###\n")},
	}
	cells, err := LoadFS(fsys, "glider.txt")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	want := NewCellSet(Pos{1, 0}, Pos{2, 1}, Pos{0, 2}, Pos{1, 2}, Pos{2, 2})
	if !cells.Equal(want) {
		t.Fatalf("LoadFS = %v, expected %v", cells.Positions(), want.Positions())
	}

	_, err = LoadFS(fsys, "missing.txt")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("missing file error = %v, expected ErrSourceUnavailable", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("Load error = %v, expected ErrSourceUnavailable", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cells := NewCellSet(Pos{3, 5}, Pos{4, 6}, Pos{2, 7}, Pos{3, 7}, Pos{4, 7})
	text := Format(cells)
	if text != ".#\n..#\n###\n" {
		t.Fatalf("Format = %q", text)
	}
	if got := Parse(text); !got.Equal(cells.Translate(-2, -5)) {
		t.Fatalf("round trip = %v", got.Positions())
	}
	if Format(NewCellSet()) != "" {
		t.Fatal("empty set should format to empty text")
	}
}

func TestLoadTestdata(t *testing.T) {
	cells, err := Load(filepath.Join("testdata", "glider.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cells.Len() != 5 {
		t.Fatalf("glider has %d cells", cells.Len())
	}
	if got := Run(cells, 4); !got.Equal(cells.Translate(1, 1)) {
		t.Fatalf("loaded glider did not translate: %v", got.Positions())
	}
}
