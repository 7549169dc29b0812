package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders str onto dst with source at size pixels.
// Position (x, y) is the baseline origin.
func Draw(dst draw.Image, str string, source *FontSource, size, x, y float64, col color.Color) error {
	if str == "" || source == nil || size <= 0 {
		return nil
	}

	return source.withFace(size, func(f font.Face) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: f,
			Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
		}
		d.DrawString(str)
	})
}
