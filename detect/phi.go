package detect

import (
	"regexp"

	"github.com/haven-social/scrubber/capability"
)

// PHIPattern is one personal-information pattern family: matches contribute
// Weight per occurrence to the raw PHI score.
type PHIPattern struct {
	Subtype string
	Weight  float64
	Regex   *regexp.Regexp
}

// PHIPatterns is evaluated in order for every scan.
var PHIPatterns = []PHIPattern{
	{Subtype: "phone", Weight: 0.8, Regex: regexp.MustCompile(`\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
	{Subtype: "ssn", Weight: 1.0, Regex: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{Subtype: "email", Weight: 0.6, Regex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{Subtype: "zip", Weight: 0.5, Regex: regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)},
	{Subtype: "date", Weight: 0.4, Regex: regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)},
	{Subtype: "address", Weight: 0.7, Regex: regexp.MustCompile(`(?i)\b\d+\s+[a-z]+(?:\s[a-z]+)?\s+(?:street|st|avenue|ave|road|rd|drive|dr|lane|ln|boulevard|blvd|court|ct|place|pl|way)\b`)},
	{Subtype: "medical_record", Weight: 0.9, Regex: regexp.MustCompile(`(?i)\b(?:mrn|medical record(?: number)?|patient id|record number)\s*[:#]?\s*[a-zA-Z0-9-]+`)},
}

// loose phone-shaped candidates, re-checked against the phone validation
// capability when one is configured
var phoneCandidate = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)

const (
	// each candidate that validates adds this much, in addition to whatever
	// the generic phone pattern already contributed for the same number
	validatedPhoneWeight = 0.9

	// PhoneRegion is the region hint passed to the phone validation capability.
	PhoneRegion = "US"
)

// PHIDetection records the matches for one pattern family.
type PHIDetection struct {
	Subtype string
	Matches []string
	Weight  float64
}

type PHIResult struct {
	Score      float64
	Detections []PHIDetection
}

// CheckPHI scores raw text for personal-information patterns. phones may be
// nil, in which case the validated-phone bonus is never added.
func CheckPHI(text string, phones capability.PhoneChecker) PHIResult {
	var raw float64
	var dets []PHIDetection
	for _, p := range PHIPatterns {
		matches := p.Regex.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		raw += p.Weight * float64(len(matches))
		dets = append(dets, PHIDetection{Subtype: p.Subtype, Matches: matches, Weight: p.Weight})
	}
	if phones != nil {
		for _, cand := range phoneCandidate.FindAllString(text, -1) {
			ok, err := phones.IsValid(cand, PhoneRegion)
			if err != nil {
				phoneCheckErrors.Inc()
				continue
			}
			if ok {
				raw += validatedPhoneWeight
			}
		}
	}
	return PHIResult{Score: clamp(raw), Detections: dets}
}
