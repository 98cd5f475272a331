// icon_test.go - Tests for icon rendering and ICO encoding

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package icon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarRect(t *testing.T) {
	assert.Equal(t, image.Rect(11, 2, 21, 30), BarRect())
}

func TestRender_PlainBar(t *testing.T) {
	img := Render(color.RGBA{0xFF, 0x00, 0x00, 0xFF}, false)
	require.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())

	assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, img.RGBAAt(11, 2))
	assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, img.RGBAAt(20, 29))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 15))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(21, 15))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(15, 30))
}

func TestRender_Outline(t *testing.T) {
	img := Render(DefaultColor, true)

	// 200/255 black over opaque yellow.
	edge := img.RGBAAt(11, 2)
	assert.Equal(t, uint8(0xFF), edge.A)
	assert.InDelta(t, 55, int(edge.R), 1)
	assert.InDelta(t, 55, int(edge.G), 1)
	assert.Zero(t, edge.B)

	for _, p := range []image.Point{{20, 15}, {15, 29}, {11, 29}, {20, 2}} {
		assert.Equal(t, edge, img.RGBAAt(p.X, p.Y), "outline pixel %v", p)
	}
	assert.Equal(t, DefaultColor, img.RGBAAt(15, 15))
}

func TestEncodeICO(t *testing.T) {
	img := Render(DefaultColor, true)
	data, err := ICO(img)
	require.NoError(t, err)

	var hdr icoHeader
	var entry icoEntry
	r := bytes.NewReader(data)
	require.NoError(t, binary.Read(r, binary.LittleEndian, &hdr))
	require.NoError(t, binary.Read(r, binary.LittleEndian, &entry))

	assert.Equal(t, icoHeader{Type: 1, Count: 1}, hdr)
	assert.Equal(t, uint8(32), entry.Width)
	assert.Equal(t, uint8(32), entry.Height)
	assert.Equal(t, uint16(32), entry.BitCount)
	assert.Equal(t, uint32(icoPayloadOffset), entry.Offset)
	require.Equal(t, int(entry.Offset)+int(entry.BytesInRes), len(data))

	decoded, err := png.Decode(bytes.NewReader(data[entry.Offset:]))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r8, g8, b8, a8 := decoded.At(15, 15).RGBA()
	assert.Equal(t, [4]uint32{0xFFFF, 0xFFFF, 0, 0xFFFF}, [4]uint32{r8, g8, b8, a8})
}

func TestEncodeICO_RejectsOversize(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeICO(&buf, image.NewRGBA(image.Rect(0, 0, 300, 16)))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestPNG(t *testing.T) {
	data, err := PNG(Render(DefaultColor, false))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}
