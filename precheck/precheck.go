// Package precheck is the coarse pre-submission analyzer: it tags draft
// content so the author can be asked to confirm before the full moderation
// engine gates the actual write.
//
// It deliberately uses its own pattern lists and thresholds, distinct from
// the engine's, and never blocks on its own. Do not merge it with the scan
// path.
package precheck

import (
	"regexp"
	"strings"

	"github.com/haven-social/scrubber/capability"
	"github.com/haven-social/scrubber/keyword"
	"github.com/haven-social/scrubber/sanitize"
)

// Category tags surfaced to the author.
const (
	CategoryBadWords  = "bad_words"
	CategoryPromotion = "promotion"
	CategorySpam      = "spam"
	CategoryPHI       = "phi"
)

// coarse PHI patterns; a smaller list than the engine's
var phiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`), // phone
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),                   // ssn
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), // email
	regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`),                    // zip
	regexp.MustCompile(`\b\d{9,}\b`),                              // long numeric id
}

var promoWords = []string{
	"promo",
	"sale",
	"offer",
	"deal",
	"discount",
	"coupon",
	"advertise",
	"sponsor",
	"referral",
}

var spamWords = []string{
	"click here",
	"free money",
	"winner",
	"congratulations",
	"act now",
	"guarantee",
	"no risk",
	"make money fast",
}

// used when no dictionary capability is configured
var fallbackBadWords = []string{
	"fuck",
	"shit",
	"bitch",
	"asshole",
	"bastard",
	"damn",
	"crap",
	"stupid",
	"idiot",
}

// Result is the analyzer's answer. AlertRequired signals "ask the author to
// confirm"; it never blocks the write by itself.
type Result struct {
	BadWordHits   int      `json:"badWordHits"`
	PromoHits     int      `json:"promoHits"`
	SpamHits      int      `json:"spamHits"`
	PHIDetections int      `json:"phiDetections"`
	Categories    []string `json:"categories"`
	AlertRequired bool     `json:"alertRequired"`
}

// Analyzer runs the pre-submission checks. Dict is optional; without it a
// small built-in word list is used for the bad-words category.
type Analyzer struct {
	Dict capability.ProfanityDict
}

// Analyze tags sanitized draft text. Synchronous and never fails.
func (a *Analyzer) Analyze(text string) Result {
	clean := sanitize.Sanitize(text)
	lower := strings.ToLower(clean)

	res := Result{Categories: []string{}}

	res.BadWordHits = a.badWordHits(clean)
	for _, w := range promoWords {
		if strings.Contains(lower, w) {
			res.PromoHits++
		}
	}
	for _, w := range spamWords {
		if strings.Contains(lower, w) {
			res.SpamHits++
		}
	}
	for _, re := range phiPatterns {
		res.PHIDetections += len(re.FindAllString(clean, -1))
	}

	if res.BadWordHits > 0 {
		res.Categories = append(res.Categories, CategoryBadWords)
	}
	if res.PromoHits > 0 {
		res.Categories = append(res.Categories, CategoryPromotion)
	}
	if res.SpamHits > 0 {
		res.Categories = append(res.Categories, CategorySpam)
	}
	if res.PHIDetections > 0 {
		res.Categories = append(res.Categories, CategoryPHI)
	}
	res.AlertRequired = len(res.Categories) > 0
	return res
}

func (a *Analyzer) badWordHits(text string) int {
	if a.Dict != nil {
		bad, err := a.Dict.IsProfane(text)
		if err == nil {
			if bad {
				return 1
			}
			return 0
		}
		// dictionary failure: fall through to the built-in list
	}
	hits := 0
	for _, tok := range keyword.TokenizeText(text) {
		if keyword.TokenInSet(tok, fallbackBadWords) {
			hits++
		}
	}
	return hits
}
