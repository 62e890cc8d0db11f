// Package detect implements the independent moderation score detectors.
//
// Each detector is a pure function over the raw input text: it evaluates a
// declarative pattern table, sums weighted match counts, and clamps its own
// final score to [0, 1]. Nothing downstream re-clamps. Pattern tables are
// exported so each family can be tested in isolation from the decision
// cascade.
package detect

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
