// Package config loads avatar renderer settings from YAML.
//
// Lengths in the file are density-independent pixels (dp); the loader
// converts them to pixels with the configured density, so the renderer only
// ever sees resolved pixel values.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/shapes"
)

// Custom shape tags understood by the config loader.
const (
	ShapeRounded avatar.Shape = 2
	ShapeHexagon avatar.Shape = 6
)

// DefaultPalette is the Material palette used when a file lists no colors.
var DefaultPalette = avatar.Palette{
	"#F44336", "#E91E63", "#9C27B0", "#673AB7",
	"#3F51B5", "#2196F3", "#03A9F4", "#00BCD4",
	"#009688", "#4CAF50", "#8BC34A", "#CDDC39",
	"#FFC107", "#FF9800", "#FF5722", "#795548",
	"#607D8B",
}

// Config is the on-disk renderer configuration.
type Config struct {
	// Shape is one of rectangle, oval, rounded or hexagon.
	Shape string `yaml:"shape" validate:"oneof=rectangle oval rounded hexagon"`

	// Palette lists background colors; empty means DefaultPalette.
	Palette []string `yaml:"palette" validate:"dive,required"`

	TextColor string `yaml:"text_color" validate:"required"`

	// Density converts dp to px.
	Density float64 `yaml:"density" validate:"finite,gt=0"`

	SizeDP         float64   `yaml:"size_dp" validate:"finite,gt=0"`
	TextPaddingDP  float64   `yaml:"text_padding_dp" validate:"finite,gte=0"`
	CornerRadiusDP float64   `yaml:"corner_radius_dp" validate:"finite,gte=0"`
	Padding        PaddingDP `yaml:"padding"`
}

// PaddingDP is edge padding in dp.
type PaddingDP struct {
	Left   float64 `yaml:"left" validate:"finite,gte=0"`
	Top    float64 `yaml:"top" validate:"finite,gte=0"`
	Right  float64 `yaml:"right" validate:"finite,gte=0"`
	Bottom float64 `yaml:"bottom" validate:"finite,gte=0"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Shape:          "oval",
		TextColor:      "#FFFFFF",
		Density:        1,
		SizeDP:         48,
		TextPaddingDP:  avatar.DefaultTextPadding,
		CornerRadiusDP: 8,
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, parses and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the user
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Line: extractLine(err), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Px converts a dp length to pixels.
func (c *Config) Px(dp float64) float64 {
	return dp * c.Density
}

// SizePx returns the avatar edge length in whole pixels.
func (c *Config) SizePx() int {
	return int(c.Px(c.SizeDP) + 0.5)
}

// PaddingPx returns the edge padding in pixels.
func (c *Config) PaddingPx() avatar.Padding {
	return avatar.Padding{
		Left:   c.Px(c.Padding.Left),
		Top:    c.Px(c.Padding.Top),
		Right:  c.Px(c.Padding.Right),
		Bottom: c.Px(c.Padding.Bottom),
	}
}

// ShapeValue maps the shape name to its avatar.Shape.
func (c *Config) ShapeValue() (avatar.Shape, error) {
	return ParseShape(c.Shape)
}

// ParseShape maps a shape name to its avatar.Shape.
func ParseShape(name string) (avatar.Shape, error) {
	switch name {
	case "rectangle":
		return avatar.ShapeRectangle, nil
	case "oval":
		return avatar.ShapeOval, nil
	case "rounded":
		return ShapeRounded, nil
	case "hexagon":
		return ShapeHexagon, nil
	}
	return 0, &avatar.InvalidArgumentError{
		Op: "config.ParseShape", Field: "shape", Value: name,
		Reason: "want rectangle, oval, rounded or hexagon",
	}
}

// PaletteValue returns the configured palette, or DefaultPalette.
func (c *Config) PaletteValue() avatar.Palette {
	if len(c.Palette) == 0 {
		return append(avatar.Palette(nil), DefaultPalette...)
	}
	return avatar.Palette(c.Palette)
}

// Handler returns the shape handler serving the custom shapes.
func (c *Config) Handler() avatar.ShapeHandler {
	return shapes.Set{
		shapes.RoundedRectangle{Tag: ShapeRounded, Radius: c.Px(c.CornerRadiusDP)},
		shapes.RegularPolygon{Tag: ShapeHexagon, Sides: 6, Rotation: -1.5707963267948966},
	}
}

// RendererOptions converts the configuration to avatar options.
func (c *Config) RendererOptions() ([]avatar.Option, error) {
	shape, err := c.ShapeValue()
	if err != nil {
		return nil, err
	}
	textColor, err := avatar.ParseColor(c.TextColor)
	if err != nil {
		return nil, fmt.Errorf("config: text_color: %w", err)
	}
	return []avatar.Option{
		avatar.WithPalette(c.PaletteValue()),
		avatar.WithDefaultShape(shape),
		avatar.WithTextColor(textColor),
		avatar.WithTextPadding(c.Px(c.TextPaddingDP)),
		avatar.WithShapeHandler(c.Handler()),
	}, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
