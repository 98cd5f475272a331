//go:build headless

// overlay_backend_ebiten_headless.go - Ebiten backend stand-in for headless builds

package main

func NewEbitenDisplay() (OverlayDisplay, error) {
	return NewHeadlessDisplay(HEADLESS_SCREEN_WIDTH, HEADLESS_SCREEN_HEIGHT), nil
}
