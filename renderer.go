package avatar

import "log/slog"

// Stage is the progress of a single render call.
// Stages are entered in declaration order.
type Stage int

const (
	// StageIdle means nothing has been drawn.
	StageIdle Stage = iota
	// StageShapeDrawn means the background shape has been painted.
	StageShapeDrawn
	// StageGlyphDrawn means the glyph has been painted (or was invisible).
	StageGlyphDrawn
	// StageDone means the render finished or was skipped.
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageShapeDrawn:
		return "shape-drawn"
	case StageGlyphDrawn:
		return "glyph-drawn"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// RenderContext carries the inputs of one render pass.
// All numeric fields must be non-negative.
type RenderContext struct {
	Width, Height float64
	Padding       Padding

	// TextPadding is the additional glyph inset, in pixels, distinct from
	// the edge Padding.
	TextPadding float64

	// Background is the shape color. Nil means "pick from the palette".
	Background *RGBA
	TextColor  RGBA
	Shape      Shape

	// HasForeground reports that the host already shows an image, in which
	// case the render is skipped.
	HasForeground bool
}

// Validate reports the first negative or non-finite numeric field.
func (rc RenderContext) Validate() error {
	return rc.validate("RenderContext.Validate")
}

func (rc RenderContext) validate(op string) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", rc.Width},
		{"height", rc.Height},
		{"text padding", rc.TextPadding},
	} {
		if !validLength(f.v) {
			return invalidArg(op, f.name, f.v, "must be a finite value >= 0")
		}
	}
	return rc.Padding.validate(op)
}

// EffectiveTextPadding returns the glyph inset including half of the
// vertical edge padding, so the glyph shrinks with the shape.
func (rc RenderContext) EffectiveTextPadding() float64 {
	return rc.TextPadding + (rc.Padding.Top+rc.Padding.Bottom)/2
}

// Result describes what a render call drew.
type Result struct {
	// Stage is the last stage reached.
	Stage Stage

	// Background is the color the shape was (or would have been) filled with.
	Background RGBA

	// ColorAssigned is true when Background was drawn from the palette
	// because the RenderContext had none. Hosts persist it.
	ColorAssigned bool

	Region Region
	Glyph  GlyphLayout
}

// Renderer paints letter avatars. A Renderer holds only configuration fixed
// at construction and may be shared by many avatars.
type Renderer struct {
	palette     Palette
	shape       Shape
	textColor   RGBA
	textPadding float64
	rng         RandomSource
	handler     ShapeHandler
}

// NewRenderer creates a Renderer.
// It returns an *InvalidArgumentError if the default shape is not drawable
// or the text padding is negative.
func NewRenderer(opts ...Option) (*Renderer, error) {
	const op = "NewRenderer"

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		palette:     o.palette,
		shape:       o.shape,
		textColor:   o.textColor,
		textPadding: o.textPadding,
		rng:         o.rng,
		handler:     o.handler,
	}
	if !r.AcceptsShape(o.shape) {
		return nil, invalidArg(op, "shape", o.shape, "not a built-in or handled custom shape")
	}
	if !validLength(o.textPadding) {
		return nil, invalidArg(op, "text padding", o.textPadding, "must be a finite value >= 0")
	}
	if len(r.palette) == 0 {
		Logger().Warn("avatar: empty palette, unset colors render transparent")
	}
	return r, nil
}

// Palette returns a copy of the renderer palette.
func (r *Renderer) Palette() Palette {
	return append(Palette(nil), r.palette...)
}

// DefaultShape returns the shape new avatars start with.
func (r *Renderer) DefaultShape() Shape {
	return r.shape
}

// AcceptsShape reports whether s is built-in or claimed by the ShapeHandler.
func (r *Renderer) AcceptsShape(s Shape) bool {
	if s.IsBuiltin() {
		return true
	}
	return r.handler != nil && r.handler.IsCustomShape(s)
}

// PickColor draws a background color from the palette.
func (r *Renderer) PickColor() (RGBA, error) {
	return SelectColor(r.palette, r.rng)
}

// Render paints one avatar onto s.
//
// The render is skipped when rc.HasForeground is set. Otherwise the
// background color is resolved (from rc or the palette), the shape is
// filled, and letter is drawn centered with rc.TextColor. A letter of 0
// draws the shape only.
//
// On error the returned Result.Stage tells how far drawing got; a shape may
// already be painted when the error is reported.
func (r *Renderer) Render(s Surface, m FontMetrics, rc RenderContext, letter rune) (Result, error) {
	const op = "Renderer.Render"

	res := Result{Stage: StageIdle}
	if err := rc.validate(op); err != nil {
		return res, err
	}
	if s == nil {
		return res, invalidArg(op, "surface", nil, "must not be nil")
	}

	log := Logger().With(slog.String("shape", rc.Shape.String()))

	if rc.HasForeground {
		log.Debug("avatar: foreground image set, skipping render")
		res.Stage = StageDone
		return res, nil
	}
	if m == nil && letter != 0 {
		return res, invalidArg(op, "font metrics", nil, "must not be nil")
	}

	if rc.Background != nil {
		res.Background = *rc.Background
	} else {
		c, err := r.PickColor()
		if err != nil {
			log.Debug("avatar: render aborted", slog.String("stage", res.Stage.String()), slog.Any("err", err))
			return res, err
		}
		res.Background = c
		res.ColorAssigned = true
		log.Debug("avatar: background assigned", slog.String("color", c.String()))
	}

	region, err := r.fillShape(s, rc, res.Background)
	if err != nil {
		log.Debug("avatar: render aborted", slog.String("stage", res.Stage.String()), slog.Any("err", err))
		return res, err
	}
	res.Region = region
	res.Stage = StageShapeDrawn

	res.Glyph = LayoutGlyph(letter, m, rc.Width, rc.Height, rc.EffectiveTextPadding())
	if res.Glyph.Visible() {
		s.DrawText(res.Glyph.Text, res.Glyph.X, res.Glyph.Y, rc.TextColor, res.Glyph.FontSize)
	}
	res.Stage = StageGlyphDrawn

	res.Stage = StageDone
	return res, nil
}

// fillShape paints the background region. Built-in shapes go to the
// surface primitives; anything else goes to the ShapeHandler.
func (r *Renderer) fillShape(s Surface, rc RenderContext, fill RGBA) (Region, error) {
	region, ok := ComputeRegion(rc.Shape, rc.Width, rc.Height, rc.Padding)
	if !ok {
		if r.handler != nil && r.handler.DrawShape(s, rc.Shape, rc, fill) {
			return region, nil
		}
		return region, &UnsupportedShapeError{Shape: rc.Shape}
	}

	switch region.Shape {
	case ShapeRectangle:
		if !region.Rect.Empty() {
			s.FillRectangle(region.Rect, fill)
		}
	case ShapeOval:
		if region.Radius > 0 {
			s.FillCircle(region.Center, region.Radius, fill)
		}
	}
	return region, nil
}
