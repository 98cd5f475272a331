// overlay_shapes.go - Fixed shape geometry for each overlay layer

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

/*
Every layer is a list of filled primitives computed from the surface size and
the layer's thickness. Offsets are integer pixel positions so the software and
ebiten renderers agree on which pixels are covered.

Edge shapes sit on the midpoint of each screen edge and point inwards; the
semicircle variant is a full circle centred on the edge that the surface
clips to a half disc. Corner squares sit flush in the four corners.
*/

package main

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeTriangle
	ShapeCircle
)

type Point struct {
	X, Y float32
}

// OverlayShape is one filled primitive in surface coordinates.
type OverlayShape struct {
	Kind ShapeKind

	// Rect
	X, Y, W, H float32

	// Triangle
	Points [3]Point

	// Circle
	Center Point
	Radius float32
}

func rectShape(x, y, w, h int) OverlayShape {
	return OverlayShape{Kind: ShapeRect, X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}
}

func triShape(x0, y0, x1, y1, x2, y2 int) OverlayShape {
	return OverlayShape{Kind: ShapeTriangle, Points: [3]Point{
		{float32(x0), float32(y0)},
		{float32(x1), float32(y1)},
		{float32(x2), float32(y2)},
	}}
}

func circleShape(cx, cy, r float32) OverlayShape {
	return OverlayShape{Kind: ShapeCircle, Center: Point{cx, cy}, Radius: r}
}

// LayerShapes returns the primitives for layer l on a width x height surface.
// A layer whose Show flag is off has no shapes.
func LayerShapes(l Layer, s *Settings, width, height int) []OverlayShape {
	style := s.Style(l)
	if !style.Visible || width <= 0 || height <= 0 {
		return nil
	}
	t := style.DrawThickness()

	switch l {
	case LayerEdges:
		switch s.EdgeShape {
		case EdgeTriangle:
			return edgeTriangles(width, height, t)
		case EdgeSemicircle:
			return edgeSemicircles(width, height, t)
		default:
			return edgeTabs(width, height, t)
		}
	case LayerCenter:
		cx, cy := width/2, height/2
		switch s.CenterShape {
		case CenterCrosshair:
			return centerCrosshair(cx, cy, t)
		case CenterCircle:
			return centerCircle(cx, cy, t)
		case CenterTriangle:
			return centerTriangle(cx, cy, t)
		default:
			return centerSquare(cx, cy, t)
		}
	case LayerCorners:
		return cornerSquares(width, height, t)
	}
	return nil
}

func edgeTabs(w, h, t int) []OverlayShape {
	long := max(10, t*6)
	short := max(8, t*4)
	return []OverlayShape{
		rectShape(w/2-short/2, 0, short, long),
		rectShape(w/2-short/2, h-long, short, long),
		rectShape(0, h/2-short/2, long, short),
		rectShape(w-long, h/2-short/2, long, short),
	}
}

func edgeTriangles(w, h, t int) []OverlayShape {
	base := max(10, t*6)
	ht := max(10, t*8)
	return []OverlayShape{
		triShape(w/2-base/2, 0, w/2+base/2, 0, w/2, ht),
		triShape(w/2-base/2, h-1, w/2+base/2, h-1, w/2, h-ht-1),
		triShape(0, h/2-base/2, 0, h/2+base/2, ht, h/2),
		triShape(w-1, h/2-base/2, w-1, h/2+base/2, w-ht-1, h/2),
	}
}

func edgeSemicircles(w, h, t int) []OverlayShape {
	r := float32(max(8, t*5))
	return []OverlayShape{
		circleShape(float32(w/2), 0, r),
		circleShape(float32(w/2), float32(h), r),
		circleShape(0, float32(h/2), r),
		circleShape(float32(w), float32(h/2), r),
	}
}

func centerSquare(cx, cy, t int) []OverlayShape {
	side := max(10, t*5)
	return []OverlayShape{rectShape(cx-side/2, cy-side/2, side, side)}
}

// centerCrosshair strokes two bars of width t, centred on the axis.
func centerCrosshair(cx, cy, t int) []OverlayShape {
	half := max(10, t*6) / 2
	tw := float32(t)
	return []OverlayShape{
		{Kind: ShapeRect, X: float32(cx - half), Y: float32(cy) - tw/2, W: float32(2 * half), H: tw},
		{Kind: ShapeRect, X: float32(cx) - tw/2, Y: float32(cy - half), W: tw, H: float32(2 * half)},
	}
}

func centerCircle(cx, cy, t int) []OverlayShape {
	d := max(10, t*5)
	r := float32(d) / 2
	return []OverlayShape{circleShape(float32(cx-d/2)+r, float32(cy-d/2)+r, r)}
}

func centerTriangle(cx, cy, t int) []OverlayShape {
	base := max(10, t*6)
	ht := max(10, t*7)
	return []OverlayShape{
		triShape(cx-base/2, cy+ht/2, cx+base/2, cy+ht/2, cx, cy-ht/2),
	}
}

func cornerSquares(w, h, t int) []OverlayShape {
	side := max(10, t*6)
	return []OverlayShape{
		rectShape(0, 0, side, side),
		rectShape(w-side, 0, side, side),
		rectShape(0, h-side, side, side),
		rectShape(w-side, h-side, side, side),
	}
}
