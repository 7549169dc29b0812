package shapes

import (
	"math"

	"github.com/gogpu/avatar"
)

// PolygonFiller is implemented by surfaces that can fill arbitrary
// polygons. avatar.Pixmap implements it.
type PolygonFiller interface {
	FillPolygon(pts []avatar.Point, c avatar.RGBA)
}

// RoundedRectangle draws the padded rectangle with rounded corners.
//
// On a PolygonFiller surface the outline, straight edges and flattened
// quarter arcs, is filled in one pass. Other surfaces get the shape from
// rectangle and circle primitives, which overlap; that fallback is used
// only for opaque fills and DrawShape reports false for translucent ones.
type RoundedRectangle struct {
	Tag    avatar.Shape
	Radius float64
}

// arcSegments is the number of straight segments per flattened corner.
const arcSegments = 16

// IsCustomShape implements avatar.ShapeHandler.
func (h RoundedRectangle) IsCustomShape(s avatar.Shape) bool {
	return s == h.Tag
}

// DrawShape implements avatar.ShapeHandler.
func (h RoundedRectangle) DrawShape(s avatar.Surface, shape avatar.Shape, rc avatar.RenderContext, fill avatar.RGBA) bool {
	if shape != h.Tag {
		return false
	}
	region, _ := avatar.ComputeRegion(avatar.ShapeRectangle, rc.Width, rc.Height, rc.Padding)
	b := region.Rect
	if b.Empty() {
		return true
	}
	r := min(max(0, h.Radius), b.Width()/2, b.Height()/2)

	if pf, ok := s.(PolygonFiller); ok {
		pf.FillPolygon(RoundedRectOutline(b, r), fill)
		return true
	}
	if r == 0 {
		s.FillRectangle(b, fill)
		return true
	}
	if fill.A < 1 {
		return false
	}

	// Center band, then the two side bands between the corner circles.
	s.FillRectangle(avatar.Rect{Min: avatar.Pt(b.Min.X+r, b.Min.Y), Max: avatar.Pt(b.Max.X-r, b.Max.Y)}, fill)
	s.FillRectangle(avatar.Rect{Min: avatar.Pt(b.Min.X, b.Min.Y+r), Max: avatar.Pt(b.Min.X+r, b.Max.Y-r)}, fill)
	s.FillRectangle(avatar.Rect{Min: avatar.Pt(b.Max.X-r, b.Min.Y+r), Max: avatar.Pt(b.Max.X, b.Max.Y-r)}, fill)

	s.FillCircle(avatar.Pt(b.Min.X+r, b.Min.Y+r), r, fill)
	s.FillCircle(avatar.Pt(b.Max.X-r, b.Min.Y+r), r, fill)
	s.FillCircle(avatar.Pt(b.Min.X+r, b.Max.Y-r), r, fill)
	s.FillCircle(avatar.Pt(b.Max.X-r, b.Max.Y-r), r, fill)
	return true
}

// RoundedRectOutline returns the closed outline of b with corners of
// radius r, clockwise from the top-right corner in y-down coordinates.
// A radius of 0 yields the four corners of b.
func RoundedRectOutline(b avatar.Rect, r float64) []avatar.Point {
	if r <= 0 {
		return []avatar.Point{b.Min, avatar.Pt(b.Max.X, b.Min.Y), b.Max, avatar.Pt(b.Min.X, b.Max.Y)}
	}
	corners := [4]struct {
		center avatar.Point
		start  float64
	}{
		{avatar.Pt(b.Max.X-r, b.Min.Y+r), -math.Pi / 2},
		{avatar.Pt(b.Max.X-r, b.Max.Y-r), 0},
		{avatar.Pt(b.Min.X+r, b.Max.Y-r), math.Pi / 2},
		{avatar.Pt(b.Min.X+r, b.Min.Y+r), math.Pi},
	}
	pts := make([]avatar.Point, 0, 4*(arcSegments+1))
	for _, c := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := c.start + math.Pi/2*float64(i)/arcSegments
			pts = append(pts, avatar.Pt(c.center.X+r*math.Cos(a), c.center.Y+r*math.Sin(a)))
		}
	}
	return pts
}

// RegularPolygon draws a regular polygon inscribed in the oval region.
// It needs a surface implementing PolygonFiller and reports false on any
// other surface.
type RegularPolygon struct {
	Tag   avatar.Shape
	Sides int
	// Rotation is the angle of the first vertex in radians; 0 points right.
	Rotation float64
}

// IsCustomShape implements avatar.ShapeHandler.
func (h RegularPolygon) IsCustomShape(s avatar.Shape) bool {
	return s == h.Tag && h.Sides >= 3
}

// DrawShape implements avatar.ShapeHandler.
func (h RegularPolygon) DrawShape(s avatar.Surface, shape avatar.Shape, rc avatar.RenderContext, fill avatar.RGBA) bool {
	pf, ok := s.(PolygonFiller)
	if !ok || !h.IsCustomShape(shape) {
		return false
	}
	region, _ := avatar.ComputeRegion(avatar.ShapeOval, rc.Width, rc.Height, rc.Padding)
	if region.Radius > 0 {
		pf.FillPolygon(Vertices(h.Sides, region.Center, region.Radius, h.Rotation), fill)
	}
	return true
}

// Vertices returns the corners of a regular n-gon of circumradius r.
func Vertices(n int, center avatar.Point, r, rotation float64) []avatar.Point {
	pts := make([]avatar.Point, 0, n)
	angle := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		pts = append(pts, avatar.Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a)))
	}
	return pts
}

// Set dispatches to the first handler that claims a shape.
type Set []avatar.ShapeHandler

// IsCustomShape implements avatar.ShapeHandler.
func (set Set) IsCustomShape(s avatar.Shape) bool {
	for _, h := range set {
		if h.IsCustomShape(s) {
			return true
		}
	}
	return false
}

// DrawShape implements avatar.ShapeHandler.
func (set Set) DrawShape(s avatar.Surface, shape avatar.Shape, rc avatar.RenderContext, fill avatar.RGBA) bool {
	for _, h := range set {
		if h.IsCustomShape(shape) && h.DrawShape(s, shape, rc, fill) {
			return true
		}
	}
	return false
}
