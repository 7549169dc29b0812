// Package shapes provides avatar.ShapeHandler implementations for shapes
// beyond the built-in rectangle and oval.
//
// Each handler claims one custom avatar.Shape tag chosen by the caller:
//
//	const ShapeRounded avatar.Shape = 2
//
//	r, err := avatar.NewRenderer(avatar.WithShapeHandler(
//	    shapes.RoundedRectangle{Tag: ShapeRounded, Radius: 12},
//	))
//
// Combine several handlers with Set.
package shapes
