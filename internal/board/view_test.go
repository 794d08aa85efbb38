package board

import (
	"image"
	"testing"

	"sparse-life/pkg/life"
)

func TestCellSize(t *testing.T) {
	cases := []struct {
		viewport image.Rectangle
		size     int
		want     int
	}{
		{image.Rect(0, 0, 500, 500), 100, 5},
		{image.Rect(0, 0, 800, 300), 100, 8},
		{image.Rect(100, 0, 400, 750), 75, 10},
		{image.Rect(0, 0, 50, 50), 100, 0},
		{image.Rect(0, 0, 500, 500), 0, 0},
	}
	for _, tc := range cases {
		if got := CellSize(tc.viewport, tc.size); got != tc.want {
			t.Errorf("CellSize(%v, %d) = %d, expected %d", tc.viewport, tc.size, got, tc.want)
		}
	}
}

func TestCenter(t *testing.T) {
	blinker := life.NewCellSet(life.Pos{X: 0, Y: 0}, life.Pos{X: 1, Y: 0}, life.Pos{X: 2, Y: 0})
	got := Center(blinker, 100)
	want := life.NewCellSet(life.Pos{X: 49, Y: 50}, life.Pos{X: 50, Y: 50}, life.Pos{X: 51, Y: 50})
	if !got.Equal(want) {
		t.Fatalf("Center = %v, expected %v", got.Positions(), want.Positions())
	}
	if !blinker.Has(life.Pos{}) {
		t.Fatal("Center modified its input")
	}
	if Center(life.NewCellSet(), 100).Len() != 0 {
		t.Fatal("empty set gained cells")
	}
}

func TestCenterOversizedPattern(t *testing.T) {
	wide := life.NewCellSet(life.Pos{X: 0, Y: 0}, life.Pos{X: 40, Y: 0})
	got := Center(wide, 10)
	if !got.Has(life.Pos{X: -15, Y: 5}) || !got.Has(life.Pos{X: 25, Y: 5}) {
		t.Fatalf("Center = %v", got.Positions())
	}
}

func TestProject(t *testing.T) {
	v := View{CellSize: 4, PanX: 10, PanY: -2, Viewport: image.Rect(100, 50, 500, 450)}
	got := v.Project(life.Pos{X: 3, Y: -1})
	want := image.Rect(102, 48, 106, 52)
	if got != want {
		t.Fatalf("Project = %v, expected %v", got, want)
	}
}
