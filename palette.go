package avatar

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Palette is an ordered list of candidate background colors in any form
// accepted by ParseColor. Entries are parsed lazily, when selected.
type Palette []string

// RandomSource supplies the random draw used for color selection.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomSource returns a RandomSource backed by the global
// math/rand/v2 generator. It is safe for concurrent use.
func DefaultRandomSource() RandomSource { return globalRand{} }

// SelectColor picks a uniformly random entry of p using rng.
//
// An empty palette yields Transparent and no error. A selected entry that
// fails to parse yields a *ColorFormatError naming the entry.
func SelectColor(p Palette, rng RandomSource) (RGBA, error) {
	if len(p) == 0 {
		return Transparent, nil
	}
	if rng == nil {
		rng = globalRand{}
	}
	return p.at(rng.IntN(len(p)))
}

// SelectColorFor picks an entry of p from a hash of key, so the same key
// maps to the same color in every process. An empty palette yields
// Transparent.
func SelectColorFor(p Palette, key string) (RGBA, error) {
	if len(p) == 0 {
		return Transparent, nil
	}
	return p.at(int(xxhash.Sum64String(key) % uint64(len(p))))
}

// Validate parses every entry and returns the first failure.
func (p Palette) Validate() error {
	for i := range p {
		if _, err := p.at(i); err != nil {
			return err
		}
	}
	return nil
}

func (p Palette) at(i int) (RGBA, error) {
	c, err := ParseColor(p[i])
	if err != nil {
		return Transparent, &ColorFormatError{Index: i, Value: p[i], Err: err}
	}
	return c, nil
}
