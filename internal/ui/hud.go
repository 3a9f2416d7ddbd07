//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD prints simulator status text in the corner of the screen.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw prints the status text when the HUD is visible.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrint(screen, status)
}
