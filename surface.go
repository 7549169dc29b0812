package avatar

// Surface is the drawing target an avatar is painted onto.
// Coordinates have their origin at the top-left corner with y growing down.
type Surface interface {
	// FillRectangle fills r with c.
	FillRectangle(r Rect, c RGBA)

	// FillCircle fills the circle at center with the given radius.
	FillCircle(center Point, radius float64, c RGBA)

	// DrawText draws s with its baseline origin at (x, y) at the given
	// font size in pixels. Drawing has no error return; implementations
	// that can fail keep the failure for the host, see Pixmap.Err.
	DrawText(s string, x, y float64, c RGBA, size float64)
}

// FontMetrics measures text for a given font size in pixels.
type FontMetrics interface {
	// MeasureText returns the horizontal advance of s.
	MeasureText(s string, size float64) float64

	// TextBounds returns the size of the ink bounding box of s.
	TextBounds(s string, size float64) (width, height float64)
}

// ShapeHandler extends the set of shapes a Renderer can draw.
//
// The Renderer consults the handler only for shapes the built-in geometry
// does not cover.
type ShapeHandler interface {
	// IsCustomShape reports whether the handler can draw shape.
	// Avatar.SetShape uses it to accept custom tags eagerly.
	IsCustomShape(shape Shape) bool

	// DrawShape paints shape onto s using fill and reports whether it did.
	DrawShape(s Surface, shape Shape, rc RenderContext, fill RGBA) bool
}
