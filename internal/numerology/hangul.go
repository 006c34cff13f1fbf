package numerology

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
)

// decomposeSyllable splits the first Hangul syllable of s into its leading
// consonant and medial vowel jamo. ok is false when s does not start with a
// precomposed Hangul syllable.
func decomposeSyllable(s string) (initial, medial rune, ok bool) {
	r, _ := utf8.DecodeRuneInString(s)
	if r < hangulFirst || r > hangulLast {
		return 0, 0, false
	}
	jamo := []rune(norm.NFD.String(string(r)))
	if len(jamo) < 2 {
		return 0, 0, false
	}
	return jamo[0], jamo[1], true
}
