// Package board ties the life engine to a rate limiter and a view transform.
// A Board is owned by a single driver that calls Tick once per frame; it does
// no locking.
package board

import (
	"fmt"
	"image"
	"io/fs"
	"time"

	"sparse-life/internal/core"
	pcore "sparse-life/pkg/core"
	"sparse-life/pkg/life"
)

// Parameter keys understood by SetIntParameter.
const (
	ParamFPS       = "fps"
	ParamBoardSize = "board_size"
	ParamPanX      = "pan_x"
	ParamPanY      = "pan_y"
	ParamCellSize  = "cell_size"
	ParamPop       = "population"
	ParamGen       = "generation"
)

// Status summarises the board for display.
type Status struct {
	Generation int
	Population int
	// Source names the pattern last loaded successfully, or "random".
	Source string
	// Err is the most recent reload failure. It is cleared by the next
	// successful reload, randomize or clear.
	Err error
}

// Board holds the current generation together with its pacing and view.
type Board struct {
	cfg     Config
	cells   life.CellSet
	limiter *core.RateLimiter
	sampler life.Sampler
	fsys    fs.FS
	view    View

	generation int
	source     string
	lastErr    error
}

// Option customises a Board at construction.
type Option func(*Board)

// WithSampler replaces the random source used by Randomize.
func WithSampler(s life.Sampler) Option {
	return func(b *Board) { b.sampler = s }
}

// WithFS makes Reload resolve sources inside fsys instead of the OS
// filesystem.
func WithFS(fsys fs.FS) Option {
	return func(b *Board) { b.fsys = fsys }
}

// New constructs an empty board. now starts the first rate-limiter interval.
func New(cfg Config, now time.Time, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:     cfg,
		cells:   life.NewCellSet(),
		limiter: core.NewRateLimiter(cfg.FPS, now),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.sampler == nil {
		b.sampler = pcore.NewRNG(cfg.Seed)
	}
	return b, nil
}

// Config returns the configuration with the current fps and board size.
func (b *Board) Config() Config {
	c := b.cfg
	c.FPS = b.limiter.FPS()
	return c
}

// Cells returns a copy of the current generation.
func (b *Board) Cells() life.CellSet { return b.cells.Clone() }

// Status reports generation, population and the last reload outcome.
func (b *Board) Status() Status {
	return Status{
		Generation: b.generation,
		Population: b.cells.Len(),
		Source:     b.source,
		Err:        b.lastErr,
	}
}

// Reload replaces the current generation with the pattern at source and
// centres it. On failure the current generation is kept and the error, which
// wraps life.ErrSourceUnavailable, is returned and recorded in Status.
func (b *Board) Reload(source string) error {
	var (
		cells life.CellSet
		err   error
	)
	if b.fsys != nil {
		cells, err = life.LoadFS(b.fsys, source)
	} else {
		cells, err = life.Load(source)
	}
	if err != nil {
		b.lastErr = fmt.Errorf("reload: %w", err)
		return b.lastErr
	}
	b.replace(cells, source)
	return nil
}

// Randomize seeds a new generation over the nominal board and centres it.
func (b *Board) Randomize() {
	b.replace(life.Seed(b.cfg.BoardSize, b.sampler), "random")
}

// Clear removes every live cell.
func (b *Board) Clear() {
	b.cells = life.NewCellSet()
	b.generation = 0
	b.lastErr = nil
}

func (b *Board) replace(cells life.CellSet, source string) {
	b.cells = Center(cells, b.cfg.BoardSize)
	if !b.view.Viewport.Empty() {
		b.view.CellSize = CellSize(b.view.Viewport, b.cfg.BoardSize)
	}
	b.generation = 0
	b.source = source
	b.lastErr = nil
}

// FPS returns the generation rate.
func (b *Board) FPS() int { return b.limiter.FPS() }

// Interval returns the gap between generations derived from FPS.
func (b *Board) Interval() time.Duration { return b.limiter.Interval() }

// SetFPS clamps v to [1, 60] and recomputes the interval. It returns the rate
// applied.
func (b *Board) SetFPS(v int) int { return b.limiter.SetFPS(v) }

// BoardSize returns the nominal extent used for centring and seeding.
func (b *Board) BoardSize() int { return b.cfg.BoardSize }

// SetBoardSize changes the nominal extent. Non-positive sizes are rejected and
// the previous value is kept.
func (b *Board) SetBoardSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfig, n)
	}
	b.cfg.BoardSize = n
	if !b.view.Viewport.Empty() {
		b.view.CellSize = CellSize(b.view.Viewport, n)
	}
	return nil
}

// Pan moves the view by (dx, dy) pixels. Stored cells are not touched.
func (b *Board) Pan(dx, dy int) {
	b.view.PanX += dx
	b.view.PanY += dy
}

// PanStep returns the configured pan distance per command.
func (b *Board) PanStep() int { return b.cfg.PanStep }

// View returns the current projection parameters.
func (b *Board) View() View { return b.view }

// CellSize returns the pixel edge of one cell.
func (b *Board) CellSize() int { return b.view.CellSize }

// Tick advances one generation if the rate limiter admits now. It reports
// whether a step was taken.
func (b *Board) Tick(now time.Time) bool {
	if !b.limiter.Allow(now) {
		return false
	}
	b.Step()
	return true
}

// Step advances exactly one generation, bypassing the rate limiter.
func (b *Board) Step() {
	b.cells = life.Step(b.cells)
	b.generation++
}

// Center recentres the current generation in the nominal board and derives
// the cell size from viewport.
func (b *Board) Center(viewport image.Rectangle) {
	b.view.Viewport = viewport
	b.view.CellSize = CellSize(viewport, b.cfg.BoardSize)
	b.cells = Center(b.cells, b.cfg.BoardSize)
}

// Resize records a new viewport and recomputes the cell size without moving
// any cell.
func (b *Board) Resize(viewport image.Rectangle) {
	if viewport == b.view.Viewport {
		return
	}
	b.view.Viewport = viewport
	b.view.CellSize = CellSize(viewport, b.cfg.BoardSize)
}

// Render projects every live cell into viewport, row by row.
func (b *Board) Render(viewport image.Rectangle) []image.Rectangle {
	b.Resize(viewport)
	return b.view.ProjectAll(b.cells)
}

// Parameters exposes the board's values for the HUD.
func (b *Board) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: ParamFPS, Label: "FPS", Value: b.FPS()},
		{Key: ParamBoardSize, Label: "Board size", Value: b.cfg.BoardSize},
		{Key: ParamPanX, Label: "Pan X", Value: b.view.PanX},
		{Key: ParamPanY, Label: "Pan Y", Value: b.view.PanY},
		{Key: ParamCellSize, Label: "Cell size", Value: b.view.CellSize, ReadOnly: true},
		{Key: ParamPop, Label: "Population", Value: b.cells.Len(), ReadOnly: true},
		{Key: ParamGen, Label: "Generation", Value: b.generation, ReadOnly: true},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (b *Board) ParameterControls() []core.ParameterControl {
	step := max(b.cfg.PanStep, 1)
	return []core.ParameterControl{
		{Key: ParamFPS, Label: "FPS", Step: 1, Min: core.MinFPS, Max: core.MaxFPS, HasMin: true, HasMax: true},
		{Key: ParamBoardSize, Label: "Board size", Step: 5, Min: 1, HasMin: true},
		{Key: ParamPanX, Label: "Pan X", Step: step},
		{Key: ParamPanY, Label: "Pan Y", Step: step},
	}
}

// SetIntParameter applies a HUD adjustment. It reports whether key was
// recognised and the value accepted.
func (b *Board) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamFPS:
		b.SetFPS(value)
		return true
	case ParamBoardSize:
		return b.SetBoardSize(value) == nil
	case ParamPanX:
		b.view.PanX = value
		return true
	case ParamPanY:
		b.view.PanY = value
		return true
	default:
		return false
	}
}
