//go:build !headless

// settings_dialog_ebiten.go - Settings dialog drawing and input for the Ebiten window

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	dialogBackdrop     = color.RGBA{0x00, 0x00, 0x00, 0x50}
	dialogPanelColor   = color.RGBA{0x20, 0x22, 0x28, 0xF0}
	dialogBorderColor  = color.RGBA{0x70, 0x74, 0x80, 0xFF}
	dialogFocusColor   = color.RGBA{0x3A, 0x5F, 0x9A, 0xFF}
	dialogButtonColor  = color.RGBA{0x40, 0x44, 0x4E, 0xFF}
	dialogSliderTrack  = color.RGBA{0x50, 0x54, 0x5E, 0xFF}
	dialogLabelColor   = colornames.Lightgray
	dialogValueColor   = colornames.White
	dialogSectionColor = colornames.Gold
)

// handleDialogInput maps keyboard and mouse input onto dialog actions.
func handleDialogInput(dlg *SettingsDialog, lay DialogLayout) {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		dlg.Close()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		dlg.MoveFocus(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		dlg.MoveFocus(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if shift {
			dlg.MoveFocus(-1)
		} else {
			dlg.MoveFocus(1)
		}
	case repeatPressed(ebiten.KeyLeft):
		dlg.Adjust(-1, shift)
	case repeatPressed(ebiten.KeyRight):
		dlg.Adjust(1, shift)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		dlg.Activate()
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dlg.Click(lay, mx, my)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if i := lay.HitTest(mx, my); i >= 0 && dlg.rows[i].kind == rowSlider {
			dlg.SetFocus(i)
			if wy > 0 {
				dlg.Adjust(1, shift)
			} else {
				dlg.Adjust(-1, shift)
			}
		}
	}
}

// repeatPressed fires on the first press and then at the OS-like repeat rate.
func repeatPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 30 && d%4 == 0)
}

func drawDialog(screen *ebiten.Image, rows []DialogRowView, lay DialogLayout) {
	face := basicfont.Face7x13

	// The whole screen takes clicks while the dialog is open; dim it so
	// that is visible.
	sb := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(sb.Dx()), float32(sb.Dy()), dialogBackdrop, false)

	p := lay.Panel
	vector.DrawFilledRect(screen, float32(p.Min.X), float32(p.Min.Y), float32(p.Dx()), float32(p.Dy()), dialogPanelColor, false)
	vector.StrokeRect(screen, float32(p.Min.X), float32(p.Min.Y), float32(p.Dx()), float32(p.Dy()), 1, dialogBorderColor, false)

	text.Draw(screen, APP_NAME+" Settings", face, lay.Title.X, lay.Title.Y+13, dialogValueColor)
	text.Draw(screen, DIALOG_CAPTURE_HINT, face, lay.Hint.X, lay.Hint.Y+13, dialogLabelColor)
	for _, sec := range lay.Sections {
		text.Draw(screen, sec.Title, face, p.Min.X+DIALOG_PADDING, sec.Y+15, dialogSectionColor)
	}

	for i, row := range rows {
		r := lay.Rows[i]
		x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
		baseline := r.Min.Y + (r.Dy()+10)/2

		if row.Kind == rowButton {
			fill := dialogButtonColor
			if row.Focused {
				fill = dialogFocusColor
			}
			vector.DrawFilledRect(screen, x, y, w, h, fill, false)
			vector.StrokeRect(screen, x, y, w, h, 1, dialogBorderColor, false)
			tw := text.BoundString(face, row.Label).Dx()
			text.Draw(screen, row.Label, face, r.Min.X+(r.Dx()-tw)/2, baseline, dialogValueColor)
			continue
		}

		if row.Focused {
			vector.DrawFilledRect(screen, x, y, w, h, dialogFocusColor, false)
		}
		text.Draw(screen, row.Label, face, r.Min.X+16, baseline, dialogLabelColor)

		v := lay.ValueRect(i)
		switch row.Kind {
		case rowSlider:
			trackW := float32(v.Dx() - 60)
			ty := float32(v.Min.Y + v.Dy()/2 - 2)
			vector.DrawFilledRect(screen, float32(v.Min.X), ty, trackW, 4, dialogSliderTrack, false)
			vector.DrawFilledRect(screen, float32(v.Min.X), ty, trackW*float32(row.Level), 4, dialogSectionColor, false)
			text.Draw(screen, row.Value, face, v.Min.X+int(trackW)+8, baseline, dialogValueColor)
		case rowChoice:
			text.Draw(screen, "< "+row.Value+" >", face, v.Min.X, baseline, dialogValueColor)
		default:
			text.Draw(screen, row.Value, face, v.Min.X, baseline, dialogValueColor)
		}
	}
}
