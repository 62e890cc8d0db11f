package detect

import (
	"regexp"
)

// SpamCheck is one spam signal family. Count returns the number of
// occurrences in the text; the family contributes Weight times the count,
// with the count capped so no single family dominates.
type SpamCheck struct {
	Name   string
	Weight float64
	Count  func(text string) int
}

// cap on the per-family match count
const spamFamilyCap = 3

var SpamChecks = []SpamCheck{
	{Name: "repeated_chars", Weight: 0.3, Count: countRepeatRuns},
	{Name: "link_bait", Weight: 0.7, Count: regexCount(regexp.MustCompile(`(?i)\b(?:click here|visit|check out|link in bio)\b[^\n]{0,20}?(?:https?://|www\.)`))},
	{Name: "raw_links", Weight: 0.5, Count: regexCount(regexp.MustCompile(`(?i)(?:www\.|http)`))},
	{Name: "scam_phrasing", Weight: 0.8, Count: regexCount(regexp.MustCompile(`(?i)\b(?:free|win|winner|prize|congratulations)\b.{0,40}?\b(?:click|claim|call|visit|text|buy|act now|sign up)\b`))},
}

func regexCount(re *regexp.Regexp) func(string) int {
	return func(text string) int {
		return len(re.FindAllString(text, -1))
	}
}

// countRepeatRuns counts runs of five or more identical characters. RE2 has
// no backreferences, so this is a manual scan rather than a table pattern.
func countRepeatRuns(text string) int {
	count := 0
	runLen := 0
	var prev rune = -1
	for _, r := range text {
		if r == prev {
			runLen++
		} else {
			prev = r
			runLen = 1
		}
		if runLen == 5 {
			count++
		}
	}
	return count
}

// CheckSpam scores raw text against the spam signal families.
func CheckSpam(text string) float64 {
	var raw float64
	for _, c := range SpamChecks {
		n := c.Count(text)
		if n > spamFamilyCap {
			n = spamFamilyCap
		}
		raw += c.Weight * float64(n)
	}
	return clamp(raw)
}
