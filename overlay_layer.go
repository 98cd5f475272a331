// overlay_layer.go - Overlay layer surfaces and display backend interface

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"fmt"
)

// OverlayError provides detailed error context for overlay backend operations
type OverlayError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *OverlayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("overlay %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("overlay %s failed: %s", e.Operation, e.Details)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}

// OverlayLayer is one always-on-top, click-through drawing surface. Backends
// repaint it when Dirty reports true and blend it with Opacity.
type OverlayLayer struct {
	layer    Layer
	settings *Settings
	width    int
	height   int
	visible  bool
	opacity  float64
	dirty    bool
}

func NewOverlayLayer(l Layer, settings *Settings, width, height int) *OverlayLayer {
	return &OverlayLayer{
		layer:    l,
		settings: settings,
		width:    width,
		height:   height,
		opacity:  1.0,
		dirty:    true,
	}
}

func (o *OverlayLayer) Layer() Layer {
	return o.layer
}

func (o *OverlayLayer) Size() (int, int) {
	return o.width, o.height
}

// ApplySettings picks up opacity from the record and schedules a repaint.
func (o *OverlayLayer) ApplySettings() {
	o.opacity = o.settings.Style(o.layer).Opacity()
	o.Invalidate()
}

func (o *OverlayLayer) Invalidate() {
	o.dirty = true
}

func (o *OverlayLayer) Show() {
	o.visible = true
}

func (o *OverlayLayer) Hide() {
	o.visible = false
}

func (o *OverlayLayer) Visible() bool {
	return o.visible
}

func (o *OverlayLayer) Opacity() float64 {
	return o.opacity
}

func (o *OverlayLayer) Dirty() bool {
	return o.dirty
}

// Shapes returns the current geometry and clears the dirty flag.
func (o *OverlayLayer) Shapes() []OverlayShape {
	o.dirty = false
	return LayerShapes(o.layer, o.settings, o.width, o.height)
}

func (o *OverlayLayer) Style() LayerStyle {
	return o.settings.Style(o.layer)
}

// OverlayDisplay hosts the overlay layers and runs the UI loop.
type OverlayDisplay interface {
	// ScreenSize reports the primary screen bounds the layers cover.
	ScreenSize() (int, int)
	// SetInteractive switches between click-through and input-capturing
	// modes; the settings dialog needs input.
	SetInteractive(interactive bool)
	// Run blocks on the UI loop until the app requests exit.
	Run(app *OverlayApp) error
	Close() error
}

// Predefined display backend types
const (
	DISPLAY_BACKEND_EBITEN = iota // Pure Go Ebiten backend
	DISPLAY_BACKEND_HEADLESS
)

// NewOverlayDisplay creates a display using the specified backend
func NewOverlayDisplay(backend int) (OverlayDisplay, error) {
	switch backend {
	case DISPLAY_BACKEND_EBITEN:
		return NewEbitenDisplay()
	case DISPLAY_BACKEND_HEADLESS:
		return NewHeadlessDisplay(HEADLESS_SCREEN_WIDTH, HEADLESS_SCREEN_HEIGHT), nil
	}
	return nil, &OverlayError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
