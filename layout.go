package avatar

// GlyphLayout is the placement of the avatar glyph.
// (X, Y) is the baseline origin of the text.
type GlyphLayout struct {
	Text     string
	X, Y     float64
	FontSize float64
}

// Visible reports whether the layout draws anything.
func (l GlyphLayout) Visible() bool {
	return l.Text != "" && l.FontSize > 0
}

// LayoutGlyph centers letter on a canvas of the given size.
//
// The font size is height - 2*textPadding, floored at zero; a zero font size
// or a zero letter produces an invisible layout. The glyph is centered
// horizontally on its advance and vertically on its ink bounds, with y as
// the baseline in a top-left-origin coordinate system.
func LayoutGlyph(letter rune, m FontMetrics, width, height, textPadding float64) GlyphLayout {
	size := max(0, height-2*textPadding)
	if letter == 0 || size == 0 {
		return GlyphLayout{FontSize: size}
	}

	s := string(letter)
	textWidth := m.MeasureText(s, size)
	_, textHeight := m.TextBounds(s, size)

	return GlyphLayout{
		Text:     s,
		X:        width/2 - textWidth/2,
		Y:        height/2 + textHeight/2,
		FontSize: size,
	}
}
