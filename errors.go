package avatar

import (
	"errors"
	"fmt"
)

// Sentinel errors. The concrete error types below match them with errors.Is.
var (
	// ErrInvalidArgument is matched by *InvalidArgumentError.
	ErrInvalidArgument = errors.New("avatar: invalid argument")

	// ErrColorFormat is matched by *ColorFormatError.
	ErrColorFormat = errors.New("avatar: bad color format")

	// ErrUnsupportedShape is matched by *UnsupportedShapeError.
	ErrUnsupportedShape = errors.New("avatar: unsupported shape")

	// ErrNoFont is recorded by Pixmap.DrawText when no font is set.
	ErrNoFont = errors.New("avatar: pixmap has no font")
)

// InvalidArgumentError is returned when a configuration value is rejected,
// such as an unknown shape or a negative padding. The rejected change is
// never applied.
type InvalidArgumentError struct {
	// Op is the operation that rejected the value (e.g. "Avatar.SetShape").
	Op string
	// Field names the offending field.
	Field string
	// Value is the rejected value.
	Value any
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ColorFormatError is returned when a palette entry cannot be parsed.
type ColorFormatError struct {
	// Index is the position of the entry in the palette.
	Index int
	// Value is the unparsable entry.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("avatar: palette entry %d (%q): %v", e.Index, e.Value, e.Err)
}

func (e *ColorFormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrColorFormat.
func (e *ColorFormatError) Is(target error) bool {
	return target == ErrColorFormat
}

// UnsupportedShapeError is returned when a render reaches a shape that
// neither the built-in geometry nor the configured ShapeHandler can draw.
type UnsupportedShapeError struct {
	Shape Shape
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("avatar: no handler drew shape %v", e.Shape)
}

// Is reports whether target is ErrUnsupportedShape.
func (e *UnsupportedShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

func invalidArg(op, field string, value any, reason string) error {
	return &InvalidArgumentError{Op: op, Field: field, Value: value, Reason: reason}
}
