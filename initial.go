package avatar

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Initial returns the uppercased first letter of a display name, skipping
// leading spaces and punctuation. It returns 0 when name has no letter or
// digit.
//
// Example:
//
//	a.SetLetterRune(avatar.Initial("  émile zola")) // 'É'
func Initial(name string) rune {
	i := strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	if i < 0 {
		return 0
	}
	// A Caser is stateful, so one is made per call. Uppercasing can expand a
	// rune (ß -> SS); keep the first.
	return firstRune(cases.Upper(language.Und).String(string(firstRune(name[i:]))))
}
