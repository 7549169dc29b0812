package avatar

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/avatar/text"
)

// Verify at compile time that Pixmap implements Surface.
var _ Surface = (*Pixmap)(nil)

func TestPixmapFillRectangle(t *testing.T) {
	pm := NewPixmap(20, 10)
	red := RGB(1, 0, 0)
	pm.FillRectangle(Rect{Min: Pt(5, 2), Max: Pt(15, 8)}, red)

	tests := []struct {
		x, y int
		want RGBA
	}{
		{10, 5, red},
		{5, 2, red},
		{14, 7, red},
		{4, 5, Transparent},
		{15, 5, Transparent},
		{10, 8, Transparent},
		{-1, 0, Transparent},
	}
	for _, tt := range tests {
		if got := pm.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPixmapFillCircle(t *testing.T) {
	pm := NewPixmap(40, 40)
	blue := RGB(0, 0, 1)
	pm.FillCircle(Pt(20, 20), 15, blue)

	if got := pm.GetPixel(20, 20); got != blue {
		t.Errorf("center = %v, want blue", got)
	}
	if got := pm.GetPixel(20, 7); got != blue {
		t.Errorf("inside top = %v, want blue", got)
	}
	for _, p := range [][2]int{{1, 1}, {38, 1}, {1, 38}, {38, 38}} {
		if got := pm.GetPixel(p[0], p[1]); got != Transparent {
			t.Errorf("corner %v = %v, want transparent", p, got)
		}
	}
}

func TestPixmapSourceOver(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	pm.FillRectangle(Rect{Max: Pt(4, 4)}, RGBA{R: 0, G: 0, B: 0, A: 0.5})

	got := pm.GetPixel(1, 1).NRGBA()
	if got.A != 255 || got.R < 126 || got.R > 129 {
		t.Errorf("half black over white = %v, want opaque mid gray", got)
	}

	pm.FillRectangle(Rect{Max: Pt(4, 4)}, Transparent)
	if again := pm.GetPixel(1, 1).NRGBA(); again != got {
		t.Errorf("transparent fill changed pixel: %v -> %v", got, again)
	}
}

func TestPixmapFillPolygon(t *testing.T) {
	pm := NewPixmap(20, 20)
	green := RGB(0, 1, 0)
	pm.FillPolygon([]Point{Pt(0, 0), Pt(20, 0), Pt(0, 20)}, green)

	if got := pm.GetPixel(3, 3); got != green {
		t.Errorf("inside triangle = %v, want green", got)
	}
	if got := pm.GetPixel(17, 17); got != Transparent {
		t.Errorf("outside triangle = %v, want transparent", got)
	}
}

func TestPixmapDrawText(t *testing.T) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = source.Close() }()

	pm := NewPixmap(64, 64)
	pm.DrawText("A", 10, 50, White, 40)
	if inked(pm) != 0 {
		t.Fatal("text drawn without a font")
	}
	if !errors.Is(pm.Err(), ErrNoFont) {
		t.Errorf("Err() = %v, want ErrNoFont", pm.Err())
	}

	pm.ResetErr()
	pm.SetFont(source)
	pm.DrawText("A", 10, 50, White, 40)
	if inked(pm) == 0 {
		t.Error("DrawText left the pixmap empty")
	}
	if err := pm.Err(); err != nil {
		t.Errorf("Err() = %v after a successful draw", err)
	}
}

func TestPixmapDrawTextClosedFont(t *testing.T) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatal(err)
	}

	r := newTestRenderer(t, WithPalette(Palette{"#3F51B5"}))
	a := r.NewAvatar()
	if err := a.SetSize(48, 48); err != nil {
		t.Fatal(err)
	}
	a.SetLetter("Q")

	pm := NewPixmap(48, 48)
	pm.SetFont(source)
	res, err := a.Render(pm, fixedMetrics{advance: 10, height: 12})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Stage != StageDone {
		t.Errorf("Stage = %v, want done", res.Stage)
	}
	if !errors.Is(pm.Err(), text.ErrClosed) {
		t.Errorf("Err() = %v, want text.ErrClosed", pm.Err())
	}
}

func TestPixmapRenderAvatar(t *testing.T) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = source.Close() }()

	r := newTestRenderer(t, WithPalette(Palette{"#3F51B5"}), WithDefaultShape(ShapeOval))
	a := r.NewAvatar()
	if err := a.SetSize(96, 96); err != nil {
		t.Fatal(err)
	}
	a.SetLetter("M")

	pm := NewPixmap(96, 96)
	pm.SetFont(source)
	res, err := a.Render(pm, source)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	indigo, _ := ParseColor("#3F51B5")
	if got := pm.GetPixel(48, 4); got != indigo {
		t.Errorf("top of circle = %v, want %v", got, indigo)
	}
	if got := pm.GetPixel(1, 1); got != Transparent {
		t.Errorf("corner = %v, want transparent", got)
	}

	// The glyph baseline sits below the center and the glyph straddles it.
	if res.Glyph.Y <= 48 || res.Glyph.X <= 0 || res.Glyph.X >= 48 {
		t.Errorf("glyph layout = %+v", res.Glyph)
	}
	white := 0
	for y := 30; y < 66; y++ {
		for x := 30; x < 66; x++ {
			if pm.GetPixel(x, y) == White {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("no glyph pixels near the center")
	}
}

func inked(pm *Pixmap) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}
