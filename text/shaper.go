package text

// Shaper measures text advances with a shaping engine.
type Shaper interface {
	// Advance returns the total horizontal advance of text shaped with
	// source at size pixels.
	Advance(source *FontSource, text string, size float64) float64
}
