package detect

import (
	"regexp"
	"strings"
)

var (
	fullURLRegex = regexp.MustCompile(`(?i)\bhttps?://[^\s<>"']+`)
	// bare domain-looking tokens, over a fixed set of common TLDs
	bareDomainRegex = regexp.MustCompile(`(?i)\b(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:com|net|org|io|co|me|ly|info|biz|app|site|online|shop|store|xyz)\b`)
)

// ShortenerDomains is a small denylist of link-shortener hosts.
var ShortenerDomains = []string{
	"bit.ly",
	"tinyurl.com",
	"goo.gl",
	"t.co",
	"ow.ly",
	"is.gd",
	"buff.ly",
	"rebrand.ly",
	"cutt.ly",
	"shorturl.at",
}

const (
	urlWeight        = 0.3
	domainWeight     = 0.1
	shortenerPenalty = 0.4
)

type LinkResult struct {
	Score       float64
	URLCount    int
	DomainCount int
	Shortener   bool
}

// CheckLinks scores raw text for link risk: full URLs, bare domains, and a
// flat penalty if any URL goes through a known shortener.
func CheckLinks(text string) LinkResult {
	urls := fullURLRegex.FindAllString(text, -1)
	// domains inside full URLs are already counted at the URL weight
	remainder := fullURLRegex.ReplaceAllString(text, " ")
	domains := bareDomainRegex.FindAllString(remainder, -1)

	raw := urlWeight*float64(len(urls)) + domainWeight*float64(len(domains))

	shortener := false
	for _, u := range urls {
		lower := strings.ToLower(u)
		for _, host := range ShortenerDomains {
			if strings.Contains(lower, host) {
				shortener = true
				break
			}
		}
		if shortener {
			break
		}
	}
	if shortener {
		raw += shortenerPenalty
	}

	return LinkResult{
		Score:       clamp(raw),
		URLCount:    len(urls),
		DomainCount: len(domains),
		Shortener:   shortener,
	}
}
