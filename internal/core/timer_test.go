package core

import (
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	cases := []struct {
		fps  int
		want time.Duration
	}{
		{1, time.Second},
		{3, 333 * time.Millisecond},
		{30, 33 * time.Millisecond},
		{60, 16 * time.Millisecond},
		{0, time.Second},
	}
	for _, tc := range cases {
		if got := Interval(tc.fps); got != tc.want {
			t.Errorf("Interval(%d) = %v, expected %v", tc.fps, got, tc.want)
		}
	}
}

func TestRateLimiterGates(t *testing.T) {
	start := time.Unix(1000, 0)
	rl := NewRateLimiter(10, start)

	if rl.Allow(start.Add(99 * time.Millisecond)) {
		t.Fatal("allowed before the first interval elapsed")
	}
	first := start.Add(100 * time.Millisecond)
	if !rl.Allow(first) {
		t.Fatal("denied once the interval elapsed")
	}
	if rl.Allow(first.Add(50 * time.Millisecond)) {
		t.Fatal("second call within the interval was admitted")
	}
	if !rl.Allow(first.Add(100 * time.Millisecond)) {
		t.Fatal("denied at the next interval boundary")
	}
}

func TestRateLimiterNoCatchUp(t *testing.T) {
	start := time.Unix(0, 0)
	rl := NewRateLimiter(60, start)
	later := start.Add(10 * time.Second)
	if !rl.Allow(later) {
		t.Fatal("denied after a long pause")
	}
	if rl.Allow(later) {
		t.Fatal("missed intervals were replayed")
	}
}

func TestRateLimiterSetFPS(t *testing.T) {
	rl := NewRateLimiter(30, time.Time{})
	if got := rl.SetFPS(120); got != MaxFPS || rl.FPS() != MaxFPS {
		t.Fatalf("SetFPS(120) applied %d", got)
	}
	if rl.Interval() != 16*time.Millisecond {
		t.Fatalf("interval after clamp = %v", rl.Interval())
	}
	if got := rl.SetFPS(-3); got != MinFPS {
		t.Fatalf("SetFPS(-3) applied %d", got)
	}
	if rl.Interval() != time.Second {
		t.Fatalf("interval after low clamp = %v", rl.Interval())
	}
}
