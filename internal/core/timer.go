package core

import "time"

const (
	// MinFPS and MaxFPS bound the generation rate.
	MinFPS = 1
	MaxFPS = 60
)

// Clock supplies the current time. Drivers pass its reading into Allow so
// tests can use fixed timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Interval converts a rate into the whole-millisecond gap between generations.
// The per-frame duration is computed in nanoseconds and then truncated, so 3
// fps yields 333ms.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = MinFPS
	}
	return (time.Second / time.Duration(fps)).Truncate(time.Millisecond)
}

// ClampFPS limits fps to [MinFPS, MaxFPS].
func ClampFPS(fps int) int {
	return min(max(fps, MinFPS), MaxFPS)
}

// RateLimiter admits at most one generation per interval. Missed intervals
// are not made up: a long pause produces a single step on resumption.
type RateLimiter struct {
	fps      int
	interval time.Duration
	last     time.Time
}

// NewRateLimiter constructs a limiter for fps whose first interval starts at
// start.
func NewRateLimiter(fps int, start time.Time) *RateLimiter {
	rl := &RateLimiter{last: start}
	rl.SetFPS(fps)
	return rl
}

// SetFPS clamps fps into range and recomputes the interval. It returns the
// rate that was applied.
func (r *RateLimiter) SetFPS(fps int) int {
	r.fps = ClampFPS(fps)
	r.interval = Interval(r.fps)
	return r.fps
}

// FPS returns the configured rate.
func (r *RateLimiter) FPS() int { return r.fps }

// Interval returns the current gap between admitted generations.
func (r *RateLimiter) Interval() time.Duration { return r.interval }

// Allow reports whether a generation may run at now. When it returns true
// the limiter records now as the last step time.
func (r *RateLimiter) Allow(now time.Time) bool {
	if now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now
	return true
}

// Reset restarts the current interval at now.
func (r *RateLimiter) Reset(now time.Time) { r.last = now }
