package avatar

import (
	"math"
	"strconv"
)

// Shape selects the background shape of an avatar.
// Values other than the built-in constants are custom shape tags and must be
// accepted by the renderer's ShapeHandler.
type Shape int

// Built-in shapes.
const (
	ShapeRectangle Shape = 0
	ShapeOval      Shape = 1
)

// IsBuiltin reports whether s is drawn by the built-in geometry.
func (s Shape) IsBuiltin() bool {
	return s == ShapeRectangle || s == ShapeOval
}

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeOval:
		return "oval"
	default:
		return "custom(" + strconv.Itoa(int(s)) + ")"
	}
}

// Padding is the inset applied to each edge of the canvas.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns a Padding with the same inset on every side.
func Uniform(v float64) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// validate rejects negative insets.
func (p Padding) validate(op string) error {
	for _, side := range []struct {
		name string
		v    float64
	}{
		{"padding.left", p.Left},
		{"padding.top", p.Top},
		{"padding.right", p.Right},
		{"padding.bottom", p.Bottom},
	} {
		if !validLength(side.v) {
			return invalidArg(op, side.name, side.v, "must be a finite value >= 0")
		}
	}
	return nil
}

// validLength reports whether v is a finite, non-negative length.
func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// Region is the area filled with the background color.
// For ShapeRectangle, Rect is set. For ShapeOval, Center and Radius are set.
type Region struct {
	Shape  Shape
	Rect   Rect
	Center Point
	Radius float64
}

// ComputeRegion returns the drawable region of a built-in shape on a canvas
// of the given size. ok is false for custom shapes, which have no built-in
// region.
//
// A rectangle is the canvas inset independently on every side; an axis whose
// padding exceeds the canvas collapses to zero extent.
//
// An oval is a circle centered on the canvas. Its radius comes from the
// smaller canvas dimension, and only the padding along that axis is
// subtracted: left+right when width <= height, top+bottom otherwise.
func ComputeRegion(shape Shape, width, height float64, pad Padding) (region Region, ok bool) {
	switch shape {
	case ShapeRectangle:
		r := Rect{
			Min: Pt(pad.Left, pad.Top),
			Max: Pt(width-pad.Right, height-pad.Bottom),
		}
		if r.Max.X < r.Min.X {
			r.Max.X = r.Min.X
		}
		if r.Max.Y < r.Min.Y {
			r.Max.Y = r.Min.Y
		}
		return Region{Shape: shape, Rect: r}, true

	case ShapeOval:
		minSize := min(width, height)
		var inset float64
		if minSize == width {
			inset = pad.Left + pad.Right
		} else {
			inset = pad.Top + pad.Bottom
		}
		return Region{
			Shape:  shape,
			Center: Pt(width/2, height/2),
			Radius: max(0, (minSize-inset)/2),
		}, true
	}
	return Region{Shape: shape}, false
}
