// Package text measures and draws avatar glyphs with OpenType fonts.
//
// A FontSource is the heavyweight, shared font resource. It parses TTF/OTF
// data once with golang.org/x/image/font/opentype and caches a font.Face per
// requested pixel size. FontSource satisfies avatar.FontMetrics, and Draw
// renders text onto any draw.Image.
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	w := source.MeasureText("A", 48)
//	text.Draw(img, "A", source, 48, x, y, color.White)
//
// # Shaping
//
// Advances default to the sum of per-glyph advances plus kerning, as
// reported by x/image. WithShaper swaps in a Shaper such as GoTextShaper,
// which runs HarfBuzz shaping from github.com/go-text/typesetting.
package text
