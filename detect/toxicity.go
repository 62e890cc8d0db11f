package detect

import (
	"regexp"

	"github.com/haven-social/scrubber/capability"
	"github.com/haven-social/scrubber/keyword"
)

// fast-path safety net: common profanity and harassment words checked with
// word boundaries against the original text, independent of normalization
var directProfanity = regexp.MustCompile(`(?i)\b(?:fuck|shit|bitch|asshole|bastard|cunt|whore|slut|stupid|idiot|hateful|moron|loser)\b`)

type ToxicityResult struct {
	Score   float64
	Profane bool
}

// CheckToxicity is binary: any one of three signals is conclusive and yields
// a score of 1.0; otherwise the score is 0.0.
//
// Signals, in order: the external profanity dictionary (skipped when dict is
// nil or fails), an obfuscation-resistant stem match against normalized text,
// and a direct word-boundary match against the original text.
func CheckToxicity(text string, dict capability.ProfanityDict) ToxicityResult {
	if dict != nil {
		bad, err := dict.IsProfane(text)
		if err != nil {
			dictErrors.Inc()
		} else if bad {
			return ToxicityResult{Score: 1.0, Profane: true}
		}
	}
	if keyword.NormalizedMatch(keyword.Normalize(text)) != "" {
		return ToxicityResult{Score: 1.0, Profane: true}
	}
	if directProfanity.MatchString(text) {
		return ToxicityResult{Score: 1.0, Profane: true}
	}
	return ToxicityResult{}
}
