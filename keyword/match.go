package keyword

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Curated stems of profanity and harassment terms, matched as substrings of
// normalized text (see Normalize). Includes common leetspeak residue and
// doubled-character variants that the run-collapse leaves behind.
//
// Checked longest-first so that a longer, more specific stem wins over any
// shorter stem contained within it.
var profanityStems = []string{
	"motherfucker",
	"dickhead",
	"asshole",
	"bullshit",
	"bastard",
	"hateful",
	"stupid",
	"bitch",
	"whore",
	"moron",
	"idiot",
	"loser",
	"fuuck",
	"fuck",
	"fack",
	"fcuk",
	"shit",
	"cunt",
	"slut",
	"piss",
	"btch",
	"fuk",
	"fck",
	"fag",
	"kys",
	"ass",
}

func init() {
	slices.SortStableFunc(profanityStems, func(a, b string) int {
		return len(b) - len(a)
	})
}

// NormalizedMatch scans normalized text for profanity stems and returns the
// first stem found, or the empty string.
//
// Stems longer than three characters count on any occurrence. Stems of three
// characters or fewer must stand alone: the two characters on each side of
// the match must be absent or non-alphanumeric, which keeps short stems from
// firing inside longer innocuous words ("class", "assessment").
func NormalizedMatch(norm string) string {
	for _, stem := range profanityStems {
		if stemOccursIn(norm, stem) {
			return stem
		}
	}
	return ""
}

func stemOccursIn(norm, stem string) bool {
	if stem == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(norm[from:], stem)
		if i < 0 {
			return false
		}
		pos := from + i
		if len(stem) > 3 || standaloneAt(norm, pos, pos+len(stem)) {
			return true
		}
		from = pos + 1
	}
}

// standaloneAt reports whether the two runes on each side of norm[start:end]
// are absent or non-alphanumeric.
func standaloneAt(norm string, start, end int) bool {
	left := norm[:start]
	for i := 0; i < 2 && len(left) > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(left)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		left = left[:len(left)-size]
	}
	right := norm[end:]
	for i := 0; i < 2 && len(right) > 0; i++ {
		r, size := utf8.DecodeRuneInString(right)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		right = right[size:]
	}
	return true
}
