package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper measures advances with HarfBuzz shaping from
// go-text/typesetting, so kerning, ligatures and complex scripts are
// honored.
//
//	shaper := text.NewGoTextShaper()
//	source, err := text.NewFontSource(data, text.WithShaper(shaper))
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects (read-only, thread-safe) and creates a font.Face per call.
// HarfbuzzShaper instances are pooled since they are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper. It returns 0 if the font cannot be parsed by
// go-text.
func (s *GoTextShaper) Advance(source *FontSource, text string, size float64) float64 {
	if text == "" || source == nil || size <= 0 {
		return 0
	}

	f, err := s.fontFor(source)
	if err != nil {
		return 0
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return fixedToFloat64(output.Advance)
}

// fontFor returns the cached go-text font for source, parsing it on first use.
func (s *GoTextShaper) fontFor(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[source]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// RemoveSource drops the cached font for source.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
