// settings_dialog_test.go - Tests for the settings dialog form logic

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func focusRow(t *testing.T, d *SettingsDialog, section, label string) {
	t.Helper()
	i := d.rowIndex(section, label)
	require.GreaterOrEqual(t, i, 0, "row %s/%s", section, label)
	d.SetFocus(i)
}

func TestSettingsDialog_LoadClampsIntoSliderRanges(t *testing.T) {
	s := DefaultSettings()
	s.EdgeThickness = 99
	s.CenterThickness = 0
	s.CornerOpacityPercent = 3
	s.EdgeOpacityPercent = 400

	d := NewSettingsDialog(&s, nil)
	draft := d.Draft()
	assert.Equal(t, THICKNESS_MAX, draft.EdgeThickness)
	assert.Equal(t, THICKNESS_MIN, draft.CenterThickness)
	assert.Equal(t, OPACITY_MIN, draft.CornerOpacityPercent)
	assert.Equal(t, OPACITY_MAX, draft.EdgeOpacityPercent)

	// The live record is untouched until Apply.
	assert.Equal(t, 99, s.EdgeThickness)
}

func TestSettingsDialog_ApplyCopiesDraftAndFires(t *testing.T) {
	s := DefaultSettings()
	applied := 0
	d := NewSettingsDialog(&s, func() { applied++ })

	focusRow(t, d, "Edge shapes", "Shape")
	d.Adjust(1, false)
	focusRow(t, d, "Corner shapes", "Show")
	d.Activate()
	focusRow(t, d, "General", "Hotkey")
	d.Adjust(-1, false)

	assert.Equal(t, EdgeRectangle, s.EdgeShape)
	assert.Zero(t, applied)

	focusRow(t, d, "Buttons", "Apply")
	d.Activate()

	assert.Equal(t, 1, applied)
	assert.Equal(t, EdgeTriangle, s.EdgeShape)
	assert.True(t, s.ShowCorners)
	assert.Equal(t, HotkeyF12, s.Hotkey)
	assert.True(t, d.IsOpen(), "apply keeps the dialog open")
}

func TestSettingsDialog_SlidersClampAtBounds(t *testing.T) {
	s := DefaultSettings()
	d := NewSettingsDialog(&s, nil)

	focusRow(t, d, "Center shape", "Opacity")
	d.Adjust(1, true)
	d.Adjust(1, true)
	assert.Equal(t, OPACITY_MAX, d.Draft().CenterOpacityPercent)
	for i := 0; i < 20; i++ {
		d.Adjust(-1, true)
	}
	assert.Equal(t, OPACITY_MIN, d.Draft().CenterOpacityPercent)

	focusRow(t, d, "Edge shapes", "Size")
	d.Adjust(-1, false)
	assert.Equal(t, 5, d.Draft().EdgeThickness)
	for i := 0; i < 10; i++ {
		d.Adjust(1, true)
	}
	assert.Equal(t, THICKNESS_MAX, d.Draft().EdgeThickness)
}

func TestSettingsDialog_ColorCycle(t *testing.T) {
	s := DefaultSettings()
	s.CornerColorHTML = "#123456"
	d := NewSettingsDialog(&s, nil)

	rows := d.Rows()
	corner := d.rowIndex("Corner shapes", "Color")
	assert.Equal(t, "#123456", rows[corner].Value)

	center := d.rowIndex("Center shape", "Color")
	assert.Equal(t, "Yellow", rows[center].Value)

	d.SetFocus(center)
	d.Adjust(1, false)
	assert.Equal(t, "#000000", d.Draft().CenterColorHTML)
	d.Adjust(-2, false)
	assert.Equal(t, "#008000", d.Draft().CenterColorHTML)

	d.SetFocus(corner)
	d.Adjust(1, false)
	assert.Equal(t, "#FF0000", d.Draft().CornerColorHTML)
}

func TestSettingsDialog_NamedColorMatchesPalette(t *testing.T) {
	s := DefaultSettings()
	s.EdgeColorHTML = "White"
	d := NewSettingsDialog(&s, nil)
	assert.Equal(t, "White", d.Rows()[d.rowIndex("Edge shapes", "Color")].Value)
}

func TestSettingsDialog_ResetRestoresDefaultsWithoutApplying(t *testing.T) {
	s := DefaultSettings()
	s.ShowCorners = true
	s.CenterShape = CenterCircle
	applied := false
	d := NewSettingsDialog(&s, func() { applied = true })

	focusRow(t, d, "Buttons", "Reset")
	d.Activate()

	assert.Equal(t, DefaultSettings(), d.Draft())
	assert.False(t, applied)
	assert.True(t, s.ShowCorners)
}

func TestSettingsDialog_FocusWrapsAndClose(t *testing.T) {
	s := DefaultSettings()
	d := NewSettingsDialog(&s, nil)

	d.MoveFocus(-1)
	assert.Equal(t, d.RowCount()-1, d.Focused())
	assert.Equal(t, "Close", d.Rows()[d.Focused()].Label)
	d.MoveFocus(1)
	assert.Zero(t, d.Focused())

	d.SetFocus(d.RowCount() - 1)
	d.Activate()
	assert.False(t, d.IsOpen())
}

func TestSettingsDialog_EnterOnFieldApplies(t *testing.T) {
	s := DefaultSettings()
	applied := false
	d := NewSettingsDialog(&s, func() { applied = true })

	focusRow(t, d, "Center shape", "Size")
	d.Adjust(1, false)
	d.Activate()

	assert.True(t, applied)
	assert.Equal(t, 5, s.CenterThickness)
}
