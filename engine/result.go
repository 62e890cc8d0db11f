package engine

import (
	"time"
)

// Status is the single disposition issued for a piece of content. Severity
// ordering (ALLOW < SOFT_BLOCK < QUARANTINE < REJECT) is documentation; the
// cascade selects by rule priority, not score magnitude.
type Status string

const (
	StatusAllow      Status = "ALLOW"
	StatusSoftBlock  Status = "SOFT_BLOCK"
	StatusQuarantine Status = "QUARANTINE"
	StatusReject     Status = "REJECT"
)

// ScoreVector holds the six detector scores, each clamped to [0, 1] by the
// detector that produced it.
type ScoreVector struct {
	PHI        float64 `json:"phi_score"`
	Spam       float64 `json:"spam_score"`
	SalesPitch float64 `json:"sales_pitch_score"`
	Toxicity   float64 `json:"toxicity_score"`
	LinkRisk   float64 `json:"link_risk_score"`
	UserTrust  float64 `json:"user_trust_score"`
}

// Informational flags derived from score thresholds. Not mutually exclusive,
// and never consulted by the cascade, which reads raw scores.
const (
	FlagPHIDetected     = "phi_detected"
	FlagSpamDetected    = "spam_detected"
	FlagSalesPitch      = "sales_pitch"
	FlagToxicity        = "toxicity"
	FlagSuspiciousLinks = "suspicious_links"
)

// DetectedSpan locates a matched substring in the original text. Offsets are
// computed from the first occurrence of the substring, so a repeated
// substring can be located at an earlier occurrence than the one that
// matched. Currently only PHI detections produce spans.
type DetectedSpan struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// ModerationInput is one scan request. Context is opaque caller data, echoed
// back unchanged on the result.
type ModerationInput struct {
	Text    string         `json:"text"`
	UserID  string         `json:"userId,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// ModerationResult is the complete verdict for one scan. Every input,
// including malformed input, produces a well-formed result; callers branch
// on Status, never on an error.
type ModerationResult struct {
	Status        Status         `json:"status"`
	Scores        ScoreVector    `json:"scores"`
	Flags         []string       `json:"flags"`
	DetectedSpans []DetectedSpan `json:"detectedSpans"`
	Timestamp     time.Time      `json:"timestamp"`
	Context       map[string]any `json:"context,omitempty"`
	Reason        string         `json:"reason,omitempty"`
}
