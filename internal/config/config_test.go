package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/avatar"
)

func TestDefault(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("empty document mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.SizePx(); got != 48 {
		t.Errorf("SizePx() = %d, want 48", got)
	}
	if diff := cmp.Diff(DefaultPalette, cfg.PaletteValue()); diff != "" {
		t.Errorf("PaletteValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
shape: hexagon
palette: ["#112233", teal]
text_color: black
density: 2.5
size_dp: 40
text_padding_dp: 4
corner_radius_dp: 6
padding:
  left: 2
  top: 1
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := cfg.SizePx(); got != 100 {
		t.Errorf("SizePx() = %d, want 100", got)
	}
	want := avatar.Padding{Left: 5, Top: 2.5}
	if diff := cmp.Diff(want, cfg.PaddingPx()); diff != "" {
		t.Errorf("PaddingPx() mismatch (-want +got):\n%s", diff)
	}
	shape, err := cfg.ShapeValue()
	if err != nil || shape != ShapeHexagon {
		t.Errorf("ShapeValue() = %v, %v; want hexagon", shape, err)
	}
	if diff := cmp.Diff(avatar.Palette{"#112233", "teal"}, cfg.PaletteValue()); diff != "" {
		t.Errorf("PaletteValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"unknown shape", "shape: star", "shape"},
		{"zero density", "density: 0", "density"},
		{"negative size", "size_dp: -1", "size_dp"},
		{"negative text padding", "text_padding_dp: -2", "text_padding_dp"},
		{"negative edge padding", "padding:\n  left: -1", "padding.left"},
		{"empty palette entry", `palette: ["#fff", ""]`, "palette[1]"},
		{"bad text color", "text_color: nope", "text_color"},
		{"infinite density", "density: .inf", "density"},
		{"NaN density", "density: .nan", "density"},
		{"infinite size", "size_dp: .inf", "size_dp"},
		{"infinite text padding", "text_padding_dp: .inf", "text_padding_dp"},
		{"infinite corner radius", "corner_radius_dp: .inf", "corner_radius_dp"},
		{"infinite edge padding", "padding:\n  bottom: .inf", "padding.bottom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			var ia *avatar.InvalidArgumentError
			if !errors.As(err, &ia) {
				t.Fatalf("Parse() error = %v, want *avatar.InvalidArgumentError", err)
			}
			if ia.Field != tt.field {
				t.Errorf("Field = %q, want %q", ia.Field, tt.field)
			}
			if !errors.Is(err, avatar.ErrInvalidArgument) {
				t.Error("error does not match ErrInvalidArgument")
			}
		})
	}
}

func TestParseBadPalette(t *testing.T) {
	_, err := Parse([]byte(`palette: ["#FF0000", "#12345"]`))

	var cf *avatar.ColorFormatError
	if !errors.As(err, &cf) {
		t.Fatalf("Parse() error = %v, want *avatar.ColorFormatError", err)
	}
	if cf.Index != 1 || cf.Value != "#12345" {
		t.Errorf("ColorFormatError = %+v", cf)
	}
	if !errors.Is(err, avatar.ErrColorFormat) {
		t.Error("error does not match ErrColorFormat")
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("shape: oval\n\tdensity: 2\n"))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if pe.Line == 0 {
		t.Errorf("Line = 0, want the failing line (%v)", pe.Err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.yaml")
	if err := os.WriteFile(path, []byte("shape: rounded\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shape != "rounded" {
		t.Errorf("Shape = %q", cfg.Shape)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var pe *ParseError
	if !errors.As(err, &pe) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ParseError wrapping ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("density: [1"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.As(err, &pe) || pe.Path != bad {
		t.Errorf("Load(bad) = %v, want ParseError with path", err)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		name string
		want avatar.Shape
	}{
		{"rectangle", avatar.ShapeRectangle},
		{"oval", avatar.ShapeOval},
		{"rounded", ShapeRounded},
		{"hexagon", ShapeHexagon},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseShape(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseShape("triangle"); !errors.Is(err, avatar.ErrInvalidArgument) {
		t.Errorf("ParseShape(triangle) = %v", err)
	}
}

func TestRendererOptions(t *testing.T) {
	cfg, err := Parse([]byte("shape: rounded\ntext_padding_dp: 3\ndensity: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.RendererOptions()
	if err != nil {
		t.Fatalf("RendererOptions: %v", err)
	}
	r, err := avatar.NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	if got := r.DefaultShape(); got != ShapeRounded {
		t.Errorf("DefaultShape() = %v, want rounded", got)
	}
	if !r.AcceptsShape(ShapeHexagon) {
		t.Error("renderer rejects hexagon")
	}
	if r.AcceptsShape(avatar.Shape(42)) {
		t.Error("renderer accepts an unknown shape")
	}

	a := r.NewAvatar()
	size := float64(cfg.SizePx())
	if err := a.SetSize(size, size); err != nil {
		t.Fatal(err)
	}
	if got := a.TextPadding(false); got != 6 {
		t.Errorf("TextPadding(false) = %v, want 6", got)
	}
	if _, err := a.Render(avatar.NewPixmap(cfg.SizePx(), cfg.SizePx()), nil); err != nil {
		t.Errorf("Render: %v", err)
	}
}
