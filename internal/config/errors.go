package config

import "fmt"

// ParseError represents a YAML read or decode failure with optional line
// metadata.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("config: %s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
