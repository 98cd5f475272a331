// overlay_backend_headless.go - In-memory display backend (tests, CI)

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image"
)

const (
	HEADLESS_SCREEN_WIDTH  = 1920
	HEADLESS_SCREEN_HEIGHT = 1080
)

// HeadlessDisplay software-renders the layers into an RGBA frame instead of
// a window.
type HeadlessDisplay struct {
	width       int
	height      int
	interactive bool
	closed      bool
	frameCount  uint64
	layers      [layerCount]*image.RGBA
	frame       *image.RGBA
}

func NewHeadlessDisplay(width, height int) *HeadlessDisplay {
	return &HeadlessDisplay{
		width:  width,
		height: height,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (h *HeadlessDisplay) ScreenSize() (int, int) {
	return h.width, h.height
}

func (h *HeadlessDisplay) SetInteractive(interactive bool) {
	h.interactive = interactive
}

func (h *HeadlessDisplay) Interactive() bool {
	return h.interactive
}

// Run handles events one at a time, rendering after each, until exit.
func (h *HeadlessDisplay) Run(app *OverlayApp) error {
	h.Render(app)
	for !app.Exiting() {
		ev := <-app.Events()
		app.HandleEvent(ev)
		app.SyncDialog()
		h.Render(app)
	}
	return nil
}

// Render repaints dirty layers and composites the visible ones.
func (h *HeadlessDisplay) Render(app *OverlayApp) *image.RGBA {
	clear(h.frame.Pix)
	for _, l := range app.Layers() {
		idx := l.Layer()
		if h.layers[idx] == nil || l.Dirty() {
			lw, lh := l.Size()
			img := image.NewRGBA(image.Rect(0, 0, lw, lh))
			RasterizeShapes(img, l.Shapes(), l.Style().Color())
			h.layers[idx] = img
		}
		if l.Visible() {
			CompositeLayer(h.frame, h.layers[idx], l.Opacity())
		}
	}
	h.frameCount++
	return h.frame
}

func (h *HeadlessDisplay) Frame() *image.RGBA {
	return h.frame
}

func (h *HeadlessDisplay) GetFrameCount() uint64 {
	return h.frameCount
}

func (h *HeadlessDisplay) Closed() bool {
	return h.closed
}

func (h *HeadlessDisplay) Close() error {
	h.closed = true
	return nil
}
