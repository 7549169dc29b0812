package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// Sizes are in pixels: faces are created at 72 DPI, so one point is one
// pixel.
//
// FontSource is safe for concurrent use. The x/image faces it caches are
// not, so every use of a face happens under mu.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string

	config sourceConfig

	mu     sync.Mutex
	faces  map[float64]*faceEntry
	tick   int64 // monotonic access counter
	closed bool
}

// maxCachedFaces bounds the per-size face cache. The least recently used
// face is closed when a new size would exceed it.
const maxCachedFaces = 8

// faceEntry holds a cached face with its last access time.
type faceEntry struct {
	face  font.Face
	atime int64
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontSource{
		data:   dataCopy,
		font:   f,
		name:   fontName(f),
		config: config,
		faces:  make(map[float64]*faceEntry),
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	return s.data
}

// Close releases cached faces. Later calls measure and draw nothing.
func (s *FontSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for size, e := range s.faces {
		if err := e.face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.faces, size)
	}
	s.closed = true
	return firstErr
}

// withFace runs fn with the cached face for size while holding the lock.
func (s *FontSource) withFace(size float64, fn func(font.Face)) error {
	if size <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.tick++
	e, ok := s.faces[size]
	if !ok {
		f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: s.config.hinting,
		})
		if err != nil {
			return fmt.Errorf("text: face at size %g: %w", size, err)
		}
		if len(s.faces) >= maxCachedFaces {
			s.evictOldest()
		}
		e = &faceEntry{face: f}
		s.faces[size] = e
	}
	e.atime = s.tick
	fn(e.face)
	return nil
}

// evictOldest closes and removes the least recently used face.
// Caller must hold mu.
func (s *FontSource) evictOldest() {
	var (
		oldest   float64
		oldestAt int64 = -1
	)
	for size, e := range s.faces {
		if oldestAt < 0 || e.atime < oldestAt {
			oldest, oldestAt = size, e.atime
		}
	}
	if oldestAt >= 0 {
		_ = s.faces[oldest].face.Close()
		delete(s.faces, oldest)
	}
}

// MeasureText returns the horizontal advance of str at size pixels.
// It implements avatar.FontMetrics. A closed source measures 0; Draw
// reports ErrClosed for the same condition.
func (s *FontSource) MeasureText(str string, size float64) float64 {
	if str == "" || size <= 0 {
		return 0
	}
	if s.config.shaper != nil {
		return s.config.shaper.Advance(s, str, size)
	}

	var adv fixed.Int26_6
	_ = s.withFace(size, func(f font.Face) {
		adv = font.MeasureString(f, str)
	})
	return fixedToFloat64(adv)
}

// TextBounds returns the size of the ink bounding box of str at size pixels.
// It implements avatar.FontMetrics. A closed source reports (0, 0).
func (s *FontSource) TextBounds(str string, size float64) (width, height float64) {
	if str == "" || size <= 0 {
		return 0, 0
	}

	var b fixed.Rectangle26_6
	_ = s.withFace(size, func(f font.Face) {
		b, _ = font.BoundString(f, str)
	})
	return fixedToFloat64(b.Max.X - b.Min.X), fixedToFloat64(b.Max.Y - b.Min.Y)
}

// Metrics returns the font metrics at size pixels.
func (s *FontSource) Metrics(size float64) Metrics {
	var m font.Metrics
	_ = s.withFace(size, func(f font.Face) {
		m = f.Metrics()
	})

	descent := fixedToFloat64(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	ascent := fixedToFloat64(m.Ascent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(0, fixedToFloat64(m.Height)-ascent-descent),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// fontName extracts the family name, falling back to the full name.
func fontName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
