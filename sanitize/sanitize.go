// Package sanitize strips markup from user-submitted text before it is
// persisted or shown back to authors.
//
// The moderation engine itself scans raw, unsanitized input; sanitization is
// a storage-path concern, and the pre-submission analyzer runs on sanitized
// text. Keep that asymmetry.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// script and style elements are removed along with their contents
	blockedElems = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	markupTags   = regexp.MustCompile(`(?s)<[^>]+>`)
)

// Sanitize removes script/style blocks (including contents), strips any
// remaining markup tags, and trims surrounding whitespace. Idempotent.
func Sanitize(text string) string {
	out := blockedElems.ReplaceAllString(text, "")
	out = markupTags.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
