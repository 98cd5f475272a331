// icon.go - Vertical bar application icon, PNG and ICO encoding

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

// Package icon renders the FixPoint icon: a tall bar centered on a 32x32
// transparent square. The tray uses it recolored to the edge color; the
// icongen tool writes the yellow outlined variant to an .ico file.
package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	Size      = 32
	BarWidth  = 10
	BarHeight = 28
)

var (
	DefaultColor = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	OutlineColor = color.NRGBA{0x00, 0x00, 0x00, 200}
)

// BarRect is the bar's position inside the icon square.
func BarRect() image.Rectangle {
	x := (Size - BarWidth) / 2
	y := (Size - BarHeight) / 2
	return image.Rect(x, y, x+BarWidth, y+BarHeight)
}

// Render paints the bar in fill. With outline set, a one-pixel translucent
// black border is blended over the bar's outermost pixels.
func Render(fill color.Color, outline bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	bar := BarRect()
	draw.Draw(img, bar, image.NewUniform(fill), image.Point{}, draw.Src)
	if !outline {
		return img
	}

	pen := image.NewUniform(OutlineColor)
	edges := []image.Rectangle{
		image.Rect(bar.Min.X, bar.Min.Y, bar.Max.X, bar.Min.Y+1),
		image.Rect(bar.Min.X, bar.Max.Y-1, bar.Max.X, bar.Max.Y),
		image.Rect(bar.Min.X, bar.Min.Y+1, bar.Min.X+1, bar.Max.Y-1),
		image.Rect(bar.Max.X-1, bar.Min.Y+1, bar.Max.X, bar.Max.Y-1),
	}
	for _, r := range edges {
		draw.Draw(img, r, pen, image.Point{}, draw.Over)
	}
	return img
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type icoHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

const icoPayloadOffset = 6 + 16

// EncodeICO writes img as a single-entry icon file whose image data is PNG.
func EncodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > 256 || b.Dy() > 256 {
		return fmt.Errorf("icon size %dx%d out of range", b.Dx(), b.Dy())
	}

	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return fmt.Errorf("encoding icon image: %w", err)
	}

	// 256 is stored as 0.
	entry := icoEntry{
		Width:      uint8(b.Dx()),
		Height:     uint8(b.Dy()),
		Planes:     1,
		BitCount:   32,
		BytesInRes: uint32(payload.Len()),
		Offset:     icoPayloadOffset,
	}
	if err := binary.Write(w, binary.LittleEndian, icoHeader{Type: 1, Count: 1}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
		return err
	}
	_, err := w.Write(payload.Bytes())
	return err
}

// ICO returns the encoded icon bytes.
func ICO(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG returns the encoded PNG bytes.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
