// settings_dialog_layout_test.go - Tests for dialog geometry and clicks

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDialog_CenteredAndOrdered(t *testing.T) {
	s := DefaultSettings()
	d := NewSettingsDialog(&s, nil)
	rows := d.Rows()
	lay := layoutDialog(rows, 1920, 1080)

	require.Len(t, lay.Rows, len(rows))
	assert.Equal(t, DIALOG_WIDTH, lay.Panel.Dx())
	assert.Equal(t, (1920-DIALOG_WIDTH)/2, lay.Panel.Min.X)
	assert.InDelta(t, 1080/2, lay.Panel.Min.Y+lay.Panel.Dy()/2, 1)
	assert.Len(t, lay.Sections, 4)

	for i, r := range lay.Rows {
		assert.True(t, r.In(lay.Panel), "row %d outside panel", i)
		if i > 0 && rows[i].Kind != rowButton && rows[i-1].Kind != rowButton {
			assert.Greater(t, r.Min.Y, lay.Rows[i-1].Min.Y)
		}
	}

	hint := image.Rect(lay.Hint.X, lay.Hint.Y, lay.Hint.X+len(DIALOG_CAPTURE_HINT)*7, lay.Hint.Y+DIALOG_HINT_HEIGHT)
	assert.True(t, hint.In(lay.Panel), "capture hint fits the panel")
	assert.Greater(t, lay.Hint.Y, lay.Rows[len(rows)-1].Min.Y)

	reset := d.rowIndex("Buttons", "Reset")
	closeBtn := d.rowIndex("Buttons", "Close")
	assert.Equal(t, lay.Rows[reset].Min.Y, lay.Rows[closeBtn].Min.Y)
	assert.Less(t, lay.Rows[reset].Min.X, lay.Rows[closeBtn].Min.X)
}

func TestLayoutDialog_SmallScreenPinsToOrigin(t *testing.T) {
	s := DefaultSettings()
	d := NewSettingsDialog(&s, nil)
	lay := layoutDialog(d.Rows(), 200, 100)
	assert.Equal(t, 0, lay.Panel.Min.X)
	assert.Equal(t, 0, lay.Panel.Min.Y)
}

func TestSettingsDialog_Click(t *testing.T) {
	s := DefaultSettings()
	applied := 0
	d := NewSettingsDialog(&s, func() { applied++ })
	lay := layoutDialog(d.Rows(), 1280, 720)

	assert.False(t, d.Click(lay, 0, 0))

	size := d.rowIndex("Center shape", "Size")
	v := lay.ValueRect(size)
	require.True(t, d.Click(lay, v.Max.X-2, v.Min.Y+2))
	assert.Equal(t, size, d.Focused())
	assert.Equal(t, 5, d.Draft().CenterThickness)
	d.Click(lay, v.Min.X+2, v.Min.Y+2)
	d.Click(lay, v.Min.X+2, v.Min.Y+2)
	assert.Equal(t, 3, d.Draft().CenterThickness)

	// The label area only focuses.
	label := lay.Rows[size]
	d.Click(lay, label.Min.X+1, label.Min.Y+1)
	assert.Equal(t, 3, d.Draft().CenterThickness)

	show := d.rowIndex("Corner shapes", "Show")
	r := lay.Rows[show]
	d.Click(lay, r.Min.X+1, r.Min.Y+1)
	assert.True(t, d.Draft().ShowCorners)

	apply := lay.Rows[d.rowIndex("Buttons", "Apply")]
	d.Click(lay, apply.Min.X+1, apply.Min.Y+1)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 3, s.CenterThickness)
	assert.True(t, s.ShowCorners)
}
