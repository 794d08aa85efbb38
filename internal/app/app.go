//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"

	"sparse-life/internal/board"
	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Board to the ebiten.Game interface. It is the single driver
// that calls Board.Tick once per frame.
type Game struct {
	board   *board.Board
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   core.Clock

	onColor color.Color

	width, height int
	pattern       string
	paused        bool
	tickOnce      bool
}

// New constructs a Game for the provided board.
func New(b *board.Board, cfg *Config) *Game {
	return &Game{
		board:   b,
		painter: render.NewPainter(color.White),
		hud:     ui.NewHUD(b, cfg.HUDWidth),
		overlay: ui.NewOverlay(),
		clock:   core.SystemClock{},
		onColor: color.Black,
		width:   cfg.Width,
		height:  cfg.Height,
		pattern: b.Config().Pattern,
	}
}

func (g *Game) viewport() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// Reload reloads the current pattern, keeping the board as it is on failure.
func (g *Game) Reload() {
	if g.pattern == "" {
		return
	}
	if err := g.board.Reload(g.pattern); err != nil {
		log.Printf("keeping current board: %v", err)
	}
}

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.board.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.board.SetFPS(g.board.FPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.board.SetFPS(g.board.FPS() - 1)
	}
	g.handlePan()

	g.hud.Update(g.width)

	switch {
	case g.tickOnce:
		g.board.Step()
		g.tickOnce = false
	case !g.paused:
		g.board.Tick(g.clock.Now())
	}
	g.overlay.Update(g.board.Status(), g.paused)
	return nil
}

func (g *Game) handlePan() {
	step := g.board.PanStep()
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		g.board.Pan(dx, dy)
	}
}

// Draw renders the live cells, the status overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	fills := render.Fills(g.board.Render(g.viewport()), g.onColor)
	g.painter.Draw(screen, fills)
	g.overlay.Draw(screen, g.height)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size: the board view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
