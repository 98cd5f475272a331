//go:build !headless

// overlay_backend_ebiten.go - Ebiten overlay window covering the primary screen

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
)

// EbitenDisplay is a single borderless, floating, transparent window over the
// primary monitor. Each layer keeps its own offscreen image, repainted only
// when the layer is invalidated and blended with the layer opacity every
// frame. While not interactive the window lets mouse input pass through.
type EbitenDisplay struct {
	app         *OverlayApp
	width       int
	height      int
	interactive bool
	layers      [layerCount]*ebiten.Image
	whitePixel  *ebiten.Image
}

func NewEbitenDisplay() (OverlayDisplay, error) {
	monitors := ebiten.AppendMonitors(nil)
	if len(monitors) == 0 {
		return nil, &OverlayError{Operation: "backend creation", Details: "no monitor found"}
	}
	primary := monitors[0]
	ebiten.SetMonitor(primary)
	w, h := primary.Size()
	if w <= 0 || h <= 0 {
		return nil, &OverlayError{Operation: "backend creation", Details: "primary monitor reports no size"}
	}
	log.Debug().Str("monitor", primary.Name()).Int("width", w).Int("height", h).Msg("Overlay display")
	return &EbitenDisplay{width: w, height: h}, nil
}

func (ed *EbitenDisplay) ScreenSize() (int, int) {
	return ed.width, ed.height
}

func (ed *EbitenDisplay) SetInteractive(interactive bool) {
	ed.interactive = interactive
	ebiten.SetWindowMousePassthrough(!interactive)
}

func (ed *EbitenDisplay) Run(app *OverlayApp) error {
	ed.app = app
	ebiten.SetWindowTitle(APP_NAME)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowMousePassthrough(!ed.interactive)
	ebiten.SetWindowSize(ed.width, ed.height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	err := ebiten.RunGameWithOptions(ed, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	})
	if err != nil {
		return &OverlayError{Operation: "run", Details: "ebiten main loop", Err: err}
	}
	return nil
}

func (ed *EbitenDisplay) Close() error {
	for i, img := range ed.layers {
		if img != nil {
			img.Deallocate()
			ed.layers[i] = nil
		}
	}
	return nil
}

func (ed *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		ed.app.RequestExit()
	}
	ed.app.PumpEvents()

	if dlg := ed.app.Dialog(); dlg != nil {
		handleDialogInput(dlg, layoutDialog(dlg.Rows(), ed.width, ed.height))
		ed.app.SyncDialog()
	}

	if ed.app.Exiting() {
		return ebiten.Termination
	}
	return nil
}

func (ed *EbitenDisplay) Draw(screen *ebiten.Image) {
	for _, l := range ed.app.Layers() {
		img := ed.layerImage(l)
		if !l.Visible() {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(l.Opacity()))
		screen.DrawImage(img, op)
	}

	if dlg := ed.app.Dialog(); dlg != nil {
		rows := dlg.Rows()
		drawDialog(screen, rows, layoutDialog(rows, ed.width, ed.height))
	}
}

func (ed *EbitenDisplay) Layout(_, _ int) (int, int) {
	return ed.width, ed.height
}

// layerImage repaints the layer's offscreen image if it is dirty.
func (ed *EbitenDisplay) layerImage(l *OverlayLayer) *ebiten.Image {
	idx := l.Layer()
	img := ed.layers[idx]
	if img == nil {
		img = ebiten.NewImage(ed.width, ed.height)
		ed.layers[idx] = img
		l.Invalidate()
	}
	if l.Dirty() {
		img.Clear()
		ed.fillShapes(img, l.Shapes(), l.Style().Color())
	}
	return img
}

func (ed *EbitenDisplay) fillShapes(dst *ebiten.Image, shapes []OverlayShape, c color.RGBA) {
	for _, sh := range shapes {
		switch sh.Kind {
		case ShapeRect:
			vector.DrawFilledRect(dst, sh.X, sh.Y, sh.W, sh.H, c, false)
		case ShapeCircle:
			vector.DrawFilledCircle(dst, sh.Center.X, sh.Center.Y, sh.Radius, c, false)
		case ShapeTriangle:
			ed.fillTriangle(dst, sh.Points, c)
		}
	}
}

func (ed *EbitenDisplay) fillTriangle(dst *ebiten.Image, pts [3]Point, c color.RGBA) {
	if ed.whitePixel == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		ed.whitePixel = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vs := make([]ebiten.Vertex, 3)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, ed.whitePixel, &ebiten.DrawTrianglesOptions{})
}
