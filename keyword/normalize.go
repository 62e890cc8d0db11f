package keyword

import (
	"strings"
	"unicode"
)

// separator and decoration characters removed during normalization, in
// addition to all whitespace
const separatorChars = "-_.*+#@!"

// common leetspeak substitutions, applied after separator stripping
var leetMap = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'8': 'b',
	'9': 'g',
	'$': 's',
	'!': 'i',
	'@': 'a',
}

// Normalize rewrites free-form text into a compact form for obfuscation-resistant
// matching: lower-case, whitespace and separator characters removed, leetspeak
// substitutions folded back to letters, and runs of three or more identical
// characters collapsed down to exactly two.
//
// Note the collapse stops at two, so "fuuuck" normalizes to "fuuck" rather
// than the canonical word; the stem list carries doubled variants to cover
// this.
func Normalize(orig string) string {
	lower := strings.ToLower(orig)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsSpace(r) || strings.ContainsRune(separatorChars, r) {
			continue
		}
		if sub, ok := leetMap[r]; ok {
			r = sub
		}
		b.WriteRune(r)
	}
	return collapseRuns(b.String())
}

// collapseRuns reduces any run of 3+ identical runes to exactly two.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	runLen := 0
	for _, r := range s {
		if r == prev {
			runLen++
		} else {
			prev = r
			runLen = 1
		}
		if runLen <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
