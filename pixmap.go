package avatar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/image/vector"

	"github.com/gogpu/avatar/text"
)

// kappa is the control-point distance, as a fraction of the radius, of a
// cubic Bézier approximating a quarter circle.
const kappa = 0.5522847498307936

// Pixmap is a CPU pixel buffer implementing Surface.
// Fills are anti-aliased and composited source-over.
type Pixmap struct {
	img  *image.RGBA
	font *text.FontSource
	err  error
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Text is drawn only after SetFont.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetFont sets the font used by DrawText.
func (p *Pixmap) SetFont(source *text.FontSource) {
	p.font = source
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Image returns the backing image. It shares memory with the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// Clear fills the entire pixmap with a color, replacing existing pixels.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// GetPixel returns the non-premultiplied color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}.In(p.img.Rect)) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// FillRectangle implements Surface.
func (p *Pixmap) FillRectangle(r Rect, c RGBA) {
	if r.Empty() {
		return
	}
	z := p.rasterizer()
	z.MoveTo(float32(r.Min.X), float32(r.Min.Y))
	z.LineTo(float32(r.Max.X), float32(r.Min.Y))
	z.LineTo(float32(r.Max.X), float32(r.Max.Y))
	z.LineTo(float32(r.Min.X), float32(r.Max.Y))
	z.ClosePath()
	p.paint(z, c)
}

// FillCircle implements Surface.
func (p *Pixmap) FillCircle(center Point, radius float64, c RGBA) {
	if radius <= 0 {
		return
	}
	cx, cy := center.X, center.Y
	k := radius * kappa

	z := p.rasterizer()
	moveTo(z, cx+radius, cy)
	cubeTo(z, cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	cubeTo(z, cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	cubeTo(z, cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	cubeTo(z, cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	z.ClosePath()
	p.paint(z, c)
}

// FillPolygon fills the closed polygon through pts.
func (p *Pixmap) FillPolygon(pts []Point, c RGBA) {
	if len(pts) < 3 {
		return
	}
	z := p.rasterizer()
	moveTo(z, pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
	p.paint(z, c)
}

// DrawText implements Surface. It draws nothing when no font is set.
// Failures are kept and reported by Err.
func (p *Pixmap) DrawText(s string, x, y float64, c RGBA, size float64) {
	if p.font == nil {
		p.setErr(ErrNoFont)
		return
	}
	if err := text.Draw(p.img, s, p.font, size, x, y, c.NRGBA()); err != nil {
		p.setErr(fmt.Errorf("avatar: draw %q: %w", s, err))
	}
}

// Err returns the first drawing failure since the pixmap was created or
// last reset with ResetErr.
func (p *Pixmap) Err() error {
	return p.err
}

// ResetErr clears the error reported by Err.
func (p *Pixmap) ResetErr() {
	p.err = nil
}

func (p *Pixmap) setErr(err error) {
	Logger().Debug("avatar: text draw failed", slog.Any("err", err))
	if p.err == nil {
		p.err = err
	}
}

func (p *Pixmap) rasterizer() *vector.Rasterizer {
	z := vector.NewRasterizer(p.Width(), p.Height())
	z.DrawOp = draw.Over
	return z
}

func (p *Pixmap) paint(z *vector.Rasterizer, c RGBA) {
	if c.IsTransparent() {
		return
	}
	z.Draw(p.img, p.img.Rect, image.NewUniform(c.NRGBA()), image.Point{})
}

func moveTo(z *vector.Rasterizer, x, y float64) {
	z.MoveTo(float32(x), float32(y))
}

func cubeTo(z *vector.Rasterizer, x1, y1, x2, y2, x3, y3 float64) {
	z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
