package core

import "testing"

func TestParameterControlAdjust(t *testing.T) {
	ctrl := ParameterControl{Key: "fps", Step: 5, Min: 1, Max: 60, HasMin: true, HasMax: true}
	cases := []struct {
		current, direction, want int
	}{
		{30, 1, 35},
		{30, -1, 25},
		{58, 1, 60},
		{3, -1, 1},
	}
	for _, tc := range cases {
		if got := ctrl.Adjust(tc.current, tc.direction); got != tc.want {
			t.Errorf("Adjust(%d, %d) = %d, expected %d", tc.current, tc.direction, got, tc.want)
		}
	}

	unbounded := ParameterControl{Key: "pan_x"}
	if got := unbounded.Adjust(-100, -1); got != -101 {
		t.Fatalf("unbounded Adjust = %d", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Params: []Parameter{{Key: "fps", Value: 30}, {Key: "cell_size", Value: 5, ReadOnly: true}}}
	p, ok := snap.Lookup("cell_size")
	if !ok || p.Value != 5 || !p.ReadOnly || p.String() != "5" {
		t.Fatalf("Lookup(cell_size) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
