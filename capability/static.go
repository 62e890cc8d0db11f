package capability

import (
	"github.com/haven-social/scrubber/keyword"
)

// StaticDict is a ProfanityDict over a fixed word list, matched per-token.
// Useful for tests and for hosts that want a curated list instead of the
// go-away dictionary.
type StaticDict struct {
	Words []string
}

var _ ProfanityDict = StaticDict{}

func (d StaticDict) IsProfane(text string) (bool, error) {
	for _, tok := range keyword.TokenizeText(text) {
		if keyword.TokenInSet(tok, d.Words) {
			return true, nil
		}
	}
	return false, nil
}
