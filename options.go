package avatar

// DefaultTextPadding is the text padding used when none is configured.
// It equals 8dp at density 1; hosts with other densities pass the resolved
// pixel value through WithTextPadding.
const DefaultTextPadding = 8.0

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := avatar.NewRenderer(
//	    avatar.WithPalette(avatar.Palette{"#F44336", "#3F51B5"}),
//	    avatar.WithDefaultShape(avatar.ShapeOval),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	palette     Palette
	shape       Shape
	textColor   RGBA
	textPadding float64
	rng         RandomSource
	handler     ShapeHandler
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		shape:       ShapeRectangle,
		textColor:   White,
		textPadding: DefaultTextPadding,
		rng:         globalRand{},
	}
}

// WithPalette sets the candidate background colors. The slice is copied.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = append(Palette(nil), p...)
	}
}

// WithDefaultShape sets the shape new avatars start with.
func WithDefaultShape(s Shape) Option {
	return func(o *options) {
		o.shape = s
	}
}

// WithTextColor sets the default glyph color. The default is White.
func WithTextColor(c RGBA) Option {
	return func(o *options) {
		o.textColor = c
	}
}

// WithTextPadding sets the default text padding in pixels.
func WithTextPadding(px float64) Option {
	return func(o *options) {
		o.textPadding = px
	}
}

// WithRandomSource injects the random source used for palette selection.
// Passing nil restores the default global source.
//
// Example:
//
//	// Reproducible colors in tests.
//	r, _ := avatar.NewRenderer(avatar.WithRandomSource(rand.New(rand.NewPCG(1, 2))))
func WithRandomSource(rng RandomSource) Option {
	return func(o *options) {
		if rng == nil {
			rng = globalRand{}
		}
		o.rng = rng
	}
}

// WithShapeHandler installs a handler for custom shape tags.
func WithShapeHandler(h ShapeHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}
