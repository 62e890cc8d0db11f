package helpers

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// DedupeStrings removes duplicate values, preserving first-seen order.
func DedupeStrings(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range in {
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

// returns a fast, compact hash of a string
//
// current implementation uses murmur3, default seed, and hex encoding. Used
// to reference submitted text in logs without logging the text itself.
func HashOfString(s string) string {
	val := murmur3.Sum64([]byte(s))
	return fmt.Sprintf("%016x", val)
}
