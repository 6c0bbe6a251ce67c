// Package geometry computes anchor points and connector routes between
// slide shapes. Everything here is a pure function over value types; the
// renderer calls it every frame with live target values.
package geometry

import (
	"math"

	"github.com/lixenwraith/morph"
)

// Point is a 2D position in slide coordinates
type Point struct {
	X, Y float64
}

// Shape is an axis-aligned rectangle in slide coordinates
type Shape struct {
	X, Y          float64
	Width, Height float64
}

// Anchor names a attachment point on a shape's bounds
type Anchor string

const (
	AnchorCenter      Anchor = "center"
	AnchorTop         Anchor = "top"
	AnchorBottom      Anchor = "bottom"
	AnchorLeft        Anchor = "left"
	AnchorRight       Anchor = "right"
	AnchorTopLeft     Anchor = "topLeft"
	AnchorTopRight    Anchor = "topRight"
	AnchorBottomLeft  Anchor = "bottomLeft"
	AnchorBottomRight Anchor = "bottomRight"
)

// ConnectionKind selects the routing strategy between two shapes
type ConnectionKind int

const (
	// ConnectionStraight is a single segment between the two anchors
	ConnectionStraight ConnectionKind = iota

	// ConnectionCurved is a cubic bezier whose control points extend along
	// each anchor's outward normal
	ConnectionCurved

	// ConnectionOrthogonal is an axis-aligned elbow route
	ConnectionOrthogonal
)

// ShapeOf reads a target's live values into a shape, applying scale about
// the shape's center. Missing properties fall back to zero size at origin
// with unit scale.
func ShapeOf(tgt *morph.Target) Shape {
	x := tgt.GetOr(morph.PropX, 0)
	y := tgt.GetOr(morph.PropY, 0)
	w := tgt.GetOr(morph.PropWidth, 0)
	h := tgt.GetOr(morph.PropHeight, 0)
	sx := tgt.GetOr(morph.PropScaleX, 1)
	sy := tgt.GetOr(morph.PropScaleY, 1)

	sw := w * sx
	sh := h * sy
	return Shape{
		X:      x + (w-sw)/2,
		Y:      y + (h-sh)/2,
		Width:  sw,
		Height: sh,
	}
}

// AnchorPoint returns the position of a named anchor on the shape's
// bounds. Unknown anchor names resolve to the center.
func AnchorPoint(s Shape, a Anchor) Point {
	switch a {
	case AnchorTop:
		return Point{s.X + s.Width/2, s.Y}
	case AnchorBottom:
		return Point{s.X + s.Width/2, s.Y + s.Height}
	case AnchorLeft:
		return Point{s.X, s.Y + s.Height/2}
	case AnchorRight:
		return Point{s.X + s.Width, s.Y + s.Height/2}
	case AnchorTopLeft:
		return Point{s.X, s.Y}
	case AnchorTopRight:
		return Point{s.X + s.Width, s.Y}
	case AnchorBottomLeft:
		return Point{s.X, s.Y + s.Height}
	case AnchorBottomRight:
		return Point{s.X + s.Width, s.Y + s.Height}
	default:
		return Point{s.X + s.Width/2, s.Y + s.Height/2}
	}
}

// anchorNormal returns the outward unit direction of an anchor; center and
// corner anchors have no preferred direction
func anchorNormal(a Anchor) (dx, dy float64) {
	switch a {
	case AnchorTop:
		return 0, -1
	case AnchorBottom:
		return 0, 1
	case AnchorLeft:
		return -1, 0
	case AnchorRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ConnectionPoints routes a connector between two shapes and returns the
// route as a flat x,y coordinate list.
//
// Straight: 2 points. Curved: 4 points, the inner pair being cubic bezier
// control points. Orthogonal: 2 to 4 points forming axis-aligned segments.
func ConnectionPoints(from, to Shape, fromAnchor, toAnchor Anchor, kind ConnectionKind) []float64 {
	p1 := AnchorPoint(from, fromAnchor)
	p2 := AnchorPoint(to, toAnchor)

	switch kind {
	case ConnectionCurved:
		return curvedRoute(p1, p2, fromAnchor, toAnchor)
	case ConnectionOrthogonal:
		return orthogonalRoute(p1, p2, fromAnchor, toAnchor)
	default:
		return []float64{p1.X, p1.Y, p2.X, p2.Y}
	}
}

// curvedRoute extends control points along each anchor's outward normal,
// proportional to the anchor distance, so the curve leaves and enters the
// shapes perpendicular to their edges
func curvedRoute(p1, p2 Point, a1, a2 Anchor) []float64 {
	dist := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	reach := dist * 0.4

	d1x, d1y := anchorNormal(a1)
	d2x, d2y := anchorNormal(a2)
	if d1x == 0 && d1y == 0 && dist > 0 {
		d1x = (p2.X - p1.X) / dist
		d1y = (p2.Y - p1.Y) / dist
	}
	if d2x == 0 && d2y == 0 && dist > 0 {
		d2x = (p1.X - p2.X) / dist
		d2y = (p1.Y - p2.Y) / dist
	}

	return []float64{
		p1.X, p1.Y,
		p1.X + d1x*reach, p1.Y + d1y*reach,
		p2.X + d2x*reach, p2.Y + d2y*reach,
		p2.X, p2.Y,
	}
}

// orthogonalRoute builds an axis-aligned elbow. Horizontal anchor pairs
// split at the midpoint X, vertical pairs at the midpoint Y, and mixed
// pairs take a single corner.
func orthogonalRoute(p1, p2 Point, a1, a2 Anchor) []float64 {
	d1x, _ := anchorNormal(a1)
	d2x, _ := anchorNormal(a2)
	h1 := d1x != 0
	h2 := d2x != 0

	switch {
	case p1.X == p2.X || p1.Y == p2.Y:
		return []float64{p1.X, p1.Y, p2.X, p2.Y}
	case h1 && h2:
		mx := (p1.X + p2.X) / 2
		return []float64{p1.X, p1.Y, mx, p1.Y, mx, p2.Y, p2.X, p2.Y}
	case !h1 && !h2:
		my := (p1.Y + p2.Y) / 2
		return []float64{p1.X, p1.Y, p1.X, my, p2.X, my, p2.X, p2.Y}
	case h1:
		// Leave horizontally, arrive vertically
		return []float64{p1.X, p1.Y, p2.X, p1.Y, p2.X, p2.Y}
	default:
		return []float64{p1.X, p1.Y, p1.X, p2.Y, p2.X, p2.Y}
	}
}
