// Package avatar renders letter avatars: a filled rectangle or circle with a
// single centered character, used as a placeholder profile image.
//
// # Overview
//
// A Renderer holds configuration fixed at construction (palette, default
// shape, text color, text padding, random source, custom shape handler) and
// can be shared by any number of avatars. An Avatar holds the per-instance
// state a host widget keeps: letter, shape, colors and padding.
//
// # Quick Start
//
//	r, err := avatar.NewRenderer(
//	    avatar.WithPalette(avatar.Palette{"#F44336", "#3F51B5", "#009688"}),
//	    avatar.WithDefaultShape(avatar.ShapeOval),
//	)
//	if err != nil {
//	    return err
//	}
//
//	source, _ := text.NewFontSource(goregular.TTF)
//	pm := avatar.NewPixmap(96, 96)
//	pm.SetFont(source)
//
//	a := r.NewAvatar()
//	_ = a.SetSize(96, 96)
//	a.SetLetterRune(avatar.Initial("grace hopper"))
//	if _, err := a.Render(pm, source); err != nil {
//	    return err
//	}
//
// # Rendering
//
// Render resolves the background color (picking from the palette once and
// keeping it on the Avatar), fills the shape region computed by
// ComputeRegion, then draws the glyph placed by LayoutGlyph. Drawing goes
// through the Surface and FontMetrics interfaces; Pixmap and
// text.FontSource are the bundled implementations.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. Text is
// positioned by its baseline.
//
// # Shapes
//
// ShapeRectangle and ShapeOval are built in. Other Shape values are custom
// tags handled by a ShapeHandler, see package shapes.
package avatar
