// settings_dialog_layout.go - Settings dialog geometry and mouse hit-testing

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import "image"

const (
	DIALOG_WIDTH          = 380
	DIALOG_PADDING        = 12
	DIALOG_TITLE_HEIGHT   = 26
	DIALOG_SECTION_HEIGHT = 22
	DIALOG_ROW_HEIGHT     = 20
	DIALOG_LABEL_WIDTH    = 110
	DIALOG_BUTTON_WIDTH   = 96
	DIALOG_BUTTON_HEIGHT  = 24
	DIALOG_BUTTON_GAP     = 8
	DIALOG_HINT_HEIGHT    = 18

	// Shown while the window captures input over the whole desktop.
	DIALOG_CAPTURE_HINT = "Input captured until closed (Esc)"
)

type DialogSectionHeader struct {
	Title string
	Y     int
}

// DialogLayout places the panel centered on the screen. Rows holds one
// rectangle per dialog row, in row order; buttons share the bottom line.
type DialogLayout struct {
	Panel    image.Rectangle
	Title    image.Point
	Hint     image.Point
	Sections []DialogSectionHeader
	Rows     []image.Rectangle
}

func layoutDialog(rows []DialogRowView, screenW, screenH int) DialogLayout {
	var lay DialogLayout
	lay.Rows = make([]image.Rectangle, len(rows))

	left := DIALOG_PADDING
	right := DIALOG_WIDTH - DIALOG_PADDING
	y := DIALOG_PADDING
	lay.Title = image.Pt(left, y)
	y += DIALOG_TITLE_HEIGHT

	section := ""
	var buttons []int
	for i, r := range rows {
		if r.Kind == rowButton {
			buttons = append(buttons, i)
			continue
		}
		if r.Section != section {
			section = r.Section
			lay.Sections = append(lay.Sections, DialogSectionHeader{Title: section, Y: y})
			y += DIALOG_SECTION_HEIGHT
		}
		lay.Rows[i] = image.Rect(left, y, right, y+DIALOG_ROW_HEIGHT)
		y += DIALOG_ROW_HEIGHT
	}

	if len(buttons) > 0 {
		y += DIALOG_PADDING
		x := right - len(buttons)*DIALOG_BUTTON_WIDTH - (len(buttons)-1)*DIALOG_BUTTON_GAP
		for _, i := range buttons {
			lay.Rows[i] = image.Rect(x, y, x+DIALOG_BUTTON_WIDTH, y+DIALOG_BUTTON_HEIGHT)
			x += DIALOG_BUTTON_WIDTH + DIALOG_BUTTON_GAP
		}
		y += DIALOG_BUTTON_HEIGHT
	}
	y += DIALOG_PADDING / 2
	lay.Hint = image.Pt(left, y)
	y += DIALOG_HINT_HEIGHT
	y += DIALOG_PADDING / 2

	ox := max(0, (screenW-DIALOG_WIDTH)/2)
	oy := max(0, (screenH-y)/2)
	off := image.Pt(ox, oy)
	lay.Panel = image.Rect(0, 0, DIALOG_WIDTH, y).Add(off)
	lay.Title = lay.Title.Add(off)
	lay.Hint = lay.Hint.Add(off)
	for i := range lay.Sections {
		lay.Sections[i].Y += oy
	}
	for i := range lay.Rows {
		lay.Rows[i] = lay.Rows[i].Add(off)
	}
	return lay
}

// HitTest returns the row under (x, y), or -1.
func (lay DialogLayout) HitTest(x, y int) int {
	p := image.Pt(x, y)
	for i, r := range lay.Rows {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// ValueRect is the part of a field row right of its label.
func (lay DialogLayout) ValueRect(i int) image.Rectangle {
	r := lay.Rows[i]
	r.Min.X = min(r.Max.X, r.Min.X+DIALOG_LABEL_WIDTH)
	return r
}

// Click focuses the row under (x, y) and acts on it: buttons press,
// checkboxes toggle, and choices or sliders step down or up depending on
// which half of the value area was hit. It reports whether a row was hit.
func (d *SettingsDialog) Click(lay DialogLayout, x, y int) bool {
	i := lay.HitTest(x, y)
	if i < 0 {
		return false
	}
	d.SetFocus(i)
	switch d.rows[i].kind {
	case rowButton, rowCheckbox:
		d.Activate()
	default:
		v := lay.ValueRect(i)
		if x < v.Min.X {
			return true
		}
		if x < v.Min.X+v.Dx()/2 {
			d.Adjust(-1, false)
		} else {
			d.Adjust(1, false)
		}
	}
	return true
}
