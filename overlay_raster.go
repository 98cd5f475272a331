// overlay_raster.go - Software rasterizer for overlay layers

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Control point distance for a quarter circle drawn as one cubic Bezier.
const bezierCircleK = 0.5522847498

// RasterizeShapes fills shapes into dst with a solid color. Geometry outside
// dst is clipped.
func RasterizeShapes(dst *image.RGBA, shapes []OverlayShape, c color.Color) {
	if len(shapes) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, sh := range shapes {
		appendShapePath(z, sh)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func appendShapePath(z *vector.Rasterizer, sh OverlayShape) {
	switch sh.Kind {
	case ShapeRect:
		z.MoveTo(sh.X, sh.Y)
		z.LineTo(sh.X+sh.W, sh.Y)
		z.LineTo(sh.X+sh.W, sh.Y+sh.H)
		z.LineTo(sh.X, sh.Y+sh.H)
		z.ClosePath()
	case ShapeTriangle:
		p := sh.Points
		z.MoveTo(p[0].X, p[0].Y)
		z.LineTo(p[1].X, p[1].Y)
		z.LineTo(p[2].X, p[2].Y)
		z.ClosePath()
	case ShapeCircle:
		cx, cy, r := sh.Center.X, sh.Center.Y, sh.Radius
		k := float32(bezierCircleK) * r
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.ClosePath()
	}
}

// RenderLayerImage paints one layer at full alpha, the way each overlay
// window repaints itself before the window opacity is applied.
func RenderLayerImage(l Layer, s *Settings, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	RasterizeShapes(img, LayerShapes(l, s, width, height), s.Style(l).Color())
	return img
}

// CompositeLayer blends src over dst scaled by opacity in [0,1].
func CompositeLayer(dst, src *image.RGBA, opacity float64) {
	a := uint8(clampUnit(opacity)*255 + 0.5)
	mask := image.NewUniform(color.Alpha{A: a})
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
