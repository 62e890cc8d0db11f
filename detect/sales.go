package detect

import (
	"strings"
)

// SalesPhrases are checked by substring containment against lower-cased
// text. Overlapping entries ("buy", "buy now") intentionally both count.
var SalesPhrases = []string{
	"buy now",
	"buy",
	"special offer",
	"limited time",
	"act now",
	"dm me",
	"for sale",
	"sale",
	"discount",
	"promo code",
	"order now",
	"free shipping",
	"best price",
	"money back",
	"subscribe now",
	"sign up now",
}

// flat contribution per matched phrase
const salesPhraseWeight = 0.2

type SalesResult struct {
	Score   float64
	Phrases []string
}

// CheckSalesPitch scores text for promotional phrasing and returns the
// matched phrases for diagnostics.
func CheckSalesPitch(text string) SalesResult {
	lower := strings.ToLower(text)
	var hits []string
	for _, p := range SalesPhrases {
		if strings.Contains(lower, p) {
			hits = append(hits, p)
		}
	}
	return SalesResult{
		Score:   clamp(salesPhraseWeight * float64(len(hits))),
		Phrases: hits,
	}
}
