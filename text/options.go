package text

import "golang.org/x/image/font"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	hinting font.Hinting
	shaper  Shaper
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		hinting: font.HintingNone,
	}
}

// WithHinting sets the hinting mode used for measuring and drawing.
// The default is font.HintingNone, which keeps advances fractional.
func WithHinting(h font.Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// WithShaper sets the Shaper used by MeasureText.
// Nil keeps the built-in x/image advance measurement.
func WithShaper(s Shaper) SourceOption {
	return func(c *sourceConfig) {
		c.shaper = s
	}
}
