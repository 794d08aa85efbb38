//go:build !ebiten

package ui

import "sparse-life/internal/board"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(board.Status, bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int) {}
