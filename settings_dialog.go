// settings_dialog.go - Modal settings dialog state

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"strings"
)

const (
	THICKNESS_LARGE_STEP = 5
	OPACITY_LARGE_STEP   = 10
)

// ColorOption is one entry of the dialog's color picker.
type ColorOption struct {
	Name string
	HTML string
}

var dialogColorOptions = []ColorOption{
	{"Red", "#FF0000"},
	{"Blue", "#0000FF"},
	{"Green", "#008000"},
	{"Yellow", "#FFFF00"},
	{"Black", "#000000"},
	{"White", "#FFFFFF"},
}

var dialogHotkeyOptions = []HotkeyKey{
	HotkeyNone, HotkeyF1, HotkeyF2, HotkeyF3, HotkeyF4, HotkeyF5, HotkeyF6,
	HotkeyF7, HotkeyF8, HotkeyF9, HotkeyF10, HotkeyF11, HotkeyF12,
}

type dialogRowKind int

const (
	rowCheckbox dialogRowKind = iota
	rowChoice
	rowSlider
	rowButton
)

// dialogRow binds one form control to a field of the draft record.
type dialogRow struct {
	section string
	label   string
	kind    dialogRowKind
	value   func(d *Settings) string
	level   func(d *Settings) float64
	adjust  func(d *Settings, delta int, large bool)
	press   func(dlg *SettingsDialog)
}

// DialogRowView is what the renderer needs to draw one row.
type DialogRowView struct {
	Section string
	Label   string
	Value   string
	Kind    dialogRowKind
	Focused bool
	// Level is the slider position in [0, 1].
	Level float64
}

// SettingsDialog edits a draft copy of the settings. Apply copies the draft
// into the live record and fires onApply; the dialog stays open.
type SettingsDialog struct {
	target  *Settings
	draft   Settings
	rows    []dialogRow
	focus   int
	open    bool
	onApply func()
}

func NewSettingsDialog(target *Settings, onApply func()) *SettingsDialog {
	d := &SettingsDialog{
		target:  target,
		onApply: onApply,
		open:    true,
	}
	d.rows = buildDialogRows()
	d.loadFrom(*target)
	return d
}

// loadFrom fills the form, clamping numbers into the slider ranges.
func (d *SettingsDialog) loadFrom(s Settings) {
	s.EdgeThickness = clampInt(s.EdgeThickness, THICKNESS_MIN, THICKNESS_MAX)
	s.CenterThickness = clampInt(s.CenterThickness, THICKNESS_MIN, THICKNESS_MAX)
	s.CornerThickness = clampInt(s.CornerThickness, THICKNESS_MIN, THICKNESS_MAX)
	s.EdgeOpacityPercent = clampInt(s.EdgeOpacityPercent, OPACITY_MIN, OPACITY_MAX)
	s.CenterOpacityPercent = clampInt(s.CenterOpacityPercent, OPACITY_MIN, OPACITY_MAX)
	s.CornerOpacityPercent = clampInt(s.CornerOpacityPercent, OPACITY_MIN, OPACITY_MAX)
	d.draft = s
}

func (d *SettingsDialog) Draft() Settings {
	return d.draft
}

func (d *SettingsDialog) IsOpen() bool {
	return d.open
}

func (d *SettingsDialog) Close() {
	d.open = false
}

func (d *SettingsDialog) Apply() {
	*d.target = d.draft
	if d.onApply != nil {
		d.onApply()
	}
}

// Reset reloads the defaults into the form without applying them.
func (d *SettingsDialog) Reset() {
	d.loadFrom(DefaultSettings())
}

func (d *SettingsDialog) RowCount() int {
	return len(d.rows)
}

func (d *SettingsDialog) Focused() int {
	return d.focus
}

func (d *SettingsDialog) SetFocus(i int) {
	if i >= 0 && i < len(d.rows) {
		d.focus = i
	}
}

// MoveFocus moves the focus by delta rows, wrapping around.
func (d *SettingsDialog) MoveFocus(delta int) {
	n := len(d.rows)
	d.focus = ((d.focus+delta)%n + n) % n
}

// Adjust changes the focused control: sliders by one step (or a large
// step), choices cycle, checkboxes toggle.
func (d *SettingsDialog) Adjust(delta int, large bool) {
	row := d.rows[d.focus]
	if row.adjust != nil {
		row.adjust(&d.draft, delta, large)
	}
}

// Activate presses the focused button or toggles the focused checkbox.
// Enter on any other row applies.
func (d *SettingsDialog) Activate() {
	row := d.rows[d.focus]
	switch row.kind {
	case rowButton:
		row.press(d)
	case rowCheckbox:
		row.adjust(&d.draft, 1, false)
	default:
		d.Apply()
	}
}

func (d *SettingsDialog) Rows() []DialogRowView {
	views := make([]DialogRowView, len(d.rows))
	for i, r := range d.rows {
		v := DialogRowView{Section: r.section, Label: r.label, Kind: r.kind, Focused: i == d.focus}
		if r.value != nil {
			v.Value = r.value(&d.draft)
		}
		if r.level != nil {
			v.Level = r.level(&d.draft)
		}
		views[i] = v
	}
	return views
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

func colorOptionIndex(html string) int {
	c, err := ParseHTMLColor(html)
	if err != nil {
		return -1
	}
	want := FormatHTMLColor(c)
	for i, opt := range dialogColorOptions {
		if opt.HTML == want {
			return i
		}
	}
	return -1
}

func colorOptionLabel(html string) string {
	if i := colorOptionIndex(html); i >= 0 {
		return dialogColorOptions[i].Name
	}
	if c, err := ParseHTMLColor(html); err == nil {
		return FormatHTMLColor(c)
	}
	// Unparseable colors draw yellow.
	return dialogColorOptions[3].Name
}

// cycleColor steps through the palette. A custom color leaves the palette
// cycle at its first or last entry.
func cycleColor(html string, delta int) string {
	i := colorOptionIndex(html)
	n := len(dialogColorOptions)
	switch {
	case i >= 0:
		i = cycle(i, delta, n)
	case delta > 0:
		i = 0
	default:
		i = n - 1
	}
	return dialogColorOptions[i].HTML
}

func cycleHotkey(k HotkeyKey, delta int) HotkeyKey {
	for i, opt := range dialogHotkeyOptions {
		if opt == k {
			return dialogHotkeyOptions[cycle(i, delta, len(dialogHotkeyOptions))]
		}
	}
	return HotkeyNone
}

func checkboxValue(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

func sliderStep(delta int, large bool, largeStep int) int {
	if large {
		return delta * largeStep
	}
	return delta
}

func sliderLevel(v, lo, hi int) float64 {
	return float64(clampInt(v, lo, hi)-lo) / float64(hi-lo)
}

// fieldRefs points at one layer's fields of a draft record.
type fieldRefs struct {
	show      func(d *Settings) *bool
	color     func(d *Settings) *string
	thickness func(d *Settings) *int
	opacity   func(d *Settings) *int
}

func layerRows(section string, refs fieldRefs, shape dialogRow) []dialogRow {
	return []dialogRow{
		{
			section: section, label: "Show", kind: rowCheckbox,
			value:  func(d *Settings) string { return checkboxValue(*refs.show(d)) },
			adjust: func(d *Settings, _ int, _ bool) { p := refs.show(d); *p = !*p },
		},
		shape,
		{
			section: section, label: "Color", kind: rowChoice,
			value:  func(d *Settings) string { return colorOptionLabel(*refs.color(d)) },
			adjust: func(d *Settings, delta int, _ bool) { p := refs.color(d); *p = cycleColor(*p, delta) },
		},
		{
			section: section, label: "Size", kind: rowSlider,
			value: func(d *Settings) string { return fmt.Sprintf("%dpx", *refs.thickness(d)) },
			level: func(d *Settings) float64 { return sliderLevel(*refs.thickness(d), THICKNESS_MIN, THICKNESS_MAX) },
			adjust: func(d *Settings, delta int, large bool) {
				p := refs.thickness(d)
				*p = clampInt(*p+sliderStep(delta, large, THICKNESS_LARGE_STEP), THICKNESS_MIN, THICKNESS_MAX)
			},
		},
		{
			section: section, label: "Opacity", kind: rowSlider,
			value: func(d *Settings) string { return fmt.Sprintf("%d%%", *refs.opacity(d)) },
			level: func(d *Settings) float64 { return sliderLevel(*refs.opacity(d), OPACITY_MIN, OPACITY_MAX) },
			adjust: func(d *Settings, delta int, large bool) {
				p := refs.opacity(d)
				*p = clampInt(*p+sliderStep(delta, large, OPACITY_LARGE_STEP), OPACITY_MIN, OPACITY_MAX)
			},
		},
	}
}

func buildDialogRows() []dialogRow {
	var rows []dialogRow

	rows = append(rows, layerRows("Center shape", fieldRefs{
		show:      func(d *Settings) *bool { return &d.ShowCenter },
		color:     func(d *Settings) *string { return &d.CenterColorHTML },
		thickness: func(d *Settings) *int { return &d.CenterThickness },
		opacity:   func(d *Settings) *int { return &d.CenterOpacityPercent },
	}, dialogRow{
		section: "Center shape", label: "Shape", kind: rowChoice,
		value: func(d *Settings) string { return d.CenterShape.String() },
		adjust: func(d *Settings, delta int, _ bool) {
			d.CenterShape = CenterShape(cycle(int(d.CenterShape), delta, len(centerShapeNames)))
		},
	})...)

	rows = append(rows, layerRows("Edge shapes", fieldRefs{
		show:      func(d *Settings) *bool { return &d.ShowEdges },
		color:     func(d *Settings) *string { return &d.EdgeColorHTML },
		thickness: func(d *Settings) *int { return &d.EdgeThickness },
		opacity:   func(d *Settings) *int { return &d.EdgeOpacityPercent },
	}, dialogRow{
		section: "Edge shapes", label: "Shape", kind: rowChoice,
		value: func(d *Settings) string { return d.EdgeShape.String() },
		adjust: func(d *Settings, delta int, _ bool) {
			d.EdgeShape = EdgeShape(cycle(int(d.EdgeShape), delta, len(edgeShapeNames)))
		},
	})...)

	rows = append(rows, layerRows("Corner shapes", fieldRefs{
		show:      func(d *Settings) *bool { return &d.ShowCorners },
		color:     func(d *Settings) *string { return &d.CornerColorHTML },
		thickness: func(d *Settings) *int { return &d.CornerThickness },
		opacity:   func(d *Settings) *int { return &d.CornerOpacityPercent },
	}, dialogRow{
		section: "Corner shapes", label: "Shape", kind: rowChoice,
		value: func(d *Settings) string { return d.CornerShape.String() },
		adjust: func(d *Settings, delta int, _ bool) {
			d.CornerShape = CornerShape(cycle(int(d.CornerShape), delta, len(cornerShapeNames)))
		},
	})...)

	rows = append(rows,
		dialogRow{
			section: "General", label: "Hotkey", kind: rowChoice,
			value:  func(d *Settings) string { return d.Hotkey.String() },
			adjust: func(d *Settings, delta int, _ bool) { d.Hotkey = cycleHotkey(d.Hotkey, delta) },
		},
		dialogRow{section: "Buttons", label: "Reset", kind: rowButton, press: (*SettingsDialog).Reset},
		dialogRow{section: "Buttons", label: "Apply", kind: rowButton, press: (*SettingsDialog).Apply},
		dialogRow{section: "Buttons", label: "Close", kind: rowButton, press: (*SettingsDialog).Close},
	)
	return rows
}

// rowIndex finds a row by section and label, case-insensitively.
func (d *SettingsDialog) rowIndex(section, label string) int {
	for i, r := range d.rows {
		if strings.EqualFold(r.section, section) && strings.EqualFold(r.label, label) {
			return i
		}
	}
	return -1
}
