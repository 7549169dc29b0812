package avatar

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Avatar is the per-instance state a host keeps for one letter avatar.
//
// Setters validate eagerly: a rejected value leaves the Avatar unchanged.
// Every accepted change marks the Avatar dirty and fires the invalidate
// callback; nothing is drawn until Render is called.
//
// An Avatar is not safe for concurrent use.
type Avatar struct {
	r *Renderer

	letter      rune
	shape       Shape
	shapeColor  RGBA
	colorSet    bool
	textColor   RGBA
	textPadding float64
	padding     Padding
	width       float64
	height      float64
	foreground  bool

	dirty        bool
	onInvalidate func()
}

// NewAvatar creates an Avatar using the renderer defaults. The background
// color stays unset until the first render or SetShapeColor.
func (r *Renderer) NewAvatar() *Avatar {
	return &Avatar{
		r:           r,
		shape:       r.shape,
		textColor:   r.textColor,
		textPadding: r.textPadding,
		dirty:       true,
	}
}

// OnInvalidate registers fn to be called whenever the Avatar needs a redraw.
// Passing nil removes the callback.
func (a *Avatar) OnInvalidate(fn func()) {
	a.onInvalidate = fn
}

// Dirty reports whether the Avatar changed since the last successful Render.
func (a *Avatar) Dirty() bool {
	return a.dirty
}

func (a *Avatar) invalidate() {
	a.dirty = true
	if a.onInvalidate != nil {
		a.onInvalidate()
	}
}

// Configure applies rc in one step. Width, height, padding, text padding,
// text color, shape and foreground flag are taken from rc; a non-nil
// rc.Background overrides the shape color. Nothing is applied on error.
func (a *Avatar) Configure(rc RenderContext) error {
	const op = "Avatar.Configure"
	if err := rc.validate(op); err != nil {
		return err
	}
	if !a.r.AcceptsShape(rc.Shape) {
		return invalidArg(op, "shape", rc.Shape, "not a built-in or handled custom shape")
	}

	a.width, a.height = rc.Width, rc.Height
	a.padding = rc.Padding
	a.textPadding = rc.TextPadding
	a.textColor = rc.TextColor
	a.shape = rc.Shape
	a.foreground = rc.HasForeground
	if rc.Background != nil {
		a.shapeColor, a.colorSet = *rc.Background, true
	}
	a.invalidate()
	return nil
}

// Context returns the RenderContext the next Render will use.
func (a *Avatar) Context() RenderContext {
	rc := RenderContext{
		Width:         a.width,
		Height:        a.height,
		Padding:       a.padding,
		TextPadding:   a.textPadding,
		TextColor:     a.textColor,
		Shape:         a.shape,
		HasForeground: a.foreground,
	}
	if a.colorSet {
		c := a.shapeColor
		rc.Background = &c
	}
	return rc
}

// Render draws the avatar onto s at the configured size.
// A background color picked from the palette is kept for later renders.
func (a *Avatar) Render(s Surface, m FontMetrics) (Result, error) {
	res, err := a.r.Render(s, m, a.Context(), a.letter)
	if res.ColorAssigned {
		a.shapeColor, a.colorSet = res.Background, true
	}
	if err != nil {
		return res, err
	}
	a.dirty = false
	return res, nil
}

// SetSize sets the canvas size in pixels.
func (a *Avatar) SetSize(width, height float64) error {
	const op = "Avatar.SetSize"
	if !validLength(width) {
		return invalidArg(op, "width", width, "must be a finite value >= 0")
	}
	if !validLength(height) {
		return invalidArg(op, "height", height, "must be a finite value >= 0")
	}
	a.width, a.height = width, height
	a.invalidate()
	return nil
}

// Size returns the canvas size in pixels.
func (a *Avatar) Size() (width, height float64) {
	return a.width, a.height
}

// Letter returns the current letter, or 0 if none is set.
func (a *Avatar) Letter() rune {
	return a.letter
}

// SetLetter keeps the first character of s after NFC normalization, so a
// base letter followed by a combining mark collapses to one rune where
// possible. An empty s clears the letter.
func (a *Avatar) SetLetter(s string) {
	a.letter = firstRune(s)
	a.invalidate()
}

// SetLetterRune sets the letter directly.
func (a *Avatar) SetLetterRune(r rune) {
	a.letter = r
	a.invalidate()
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(s))
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Shape returns the current shape.
func (a *Avatar) Shape() Shape {
	return a.shape
}

// SetShape changes the shape. Shapes that are neither built-in nor claimed
// by the renderer's ShapeHandler are rejected with an *InvalidArgumentError.
func (a *Avatar) SetShape(s Shape) error {
	if !a.r.AcceptsShape(s) {
		return invalidArg("Avatar.SetShape", "shape", s, "not a built-in or handled custom shape")
	}
	a.shape = s
	a.invalidate()
	return nil
}

// SetOval switches between ShapeOval and ShapeRectangle.
func (a *Avatar) SetOval(oval bool) {
	if oval {
		a.shape = ShapeOval
	} else {
		a.shape = ShapeRectangle
	}
	a.invalidate()
}

// IsOval reports whether the current shape is ShapeOval.
func (a *Avatar) IsOval() bool {
	return a.shape == ShapeOval
}

// TextColor returns the glyph color.
func (a *Avatar) TextColor() RGBA {
	return a.textColor
}

// SetTextColor sets the glyph color.
func (a *Avatar) SetTextColor(c RGBA) {
	a.textColor = c
	a.invalidate()
}

// ShapeColor returns the background color and whether one is set.
func (a *Avatar) ShapeColor() (RGBA, bool) {
	return a.shapeColor, a.colorSet
}

// SetShapeColor overrides the background color.
func (a *Avatar) SetShapeColor(c RGBA) {
	a.shapeColor, a.colorSet = c, true
	a.invalidate()
}

// ClearShapeColor unsets the background color so the next render picks
// one from the palette again.
func (a *Avatar) ClearShapeColor() {
	a.shapeColor, a.colorSet = RGBA{}, false
	a.invalidate()
}

// TextPadding returns the glyph inset. With withEdgePadding set, the top
// and bottom edge padding are added.
func (a *Avatar) TextPadding(withEdgePadding bool) float64 {
	p := a.textPadding
	if withEdgePadding {
		p += a.padding.Top + a.padding.Bottom
	}
	return p
}

// SetTextPadding sets the glyph inset in pixels.
func (a *Avatar) SetTextPadding(px float64) error {
	if !validLength(px) {
		return invalidArg("Avatar.SetTextPadding", "text padding", px, "must be a finite value >= 0")
	}
	a.textPadding = px
	a.invalidate()
	return nil
}

// Padding returns the edge padding.
func (a *Avatar) Padding() Padding {
	return a.padding
}

// SetPadding sets the edge padding.
func (a *Avatar) SetPadding(p Padding) error {
	if err := p.validate("Avatar.SetPadding"); err != nil {
		return err
	}
	a.padding = p
	a.invalidate()
	return nil
}

// SetForeground records whether the host shows another image. While set,
// Render draws nothing.
func (a *Avatar) SetForeground(present bool) {
	a.foreground = present
	a.invalidate()
}
