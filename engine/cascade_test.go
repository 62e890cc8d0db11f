package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideRuleOrder(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		name   string
		scores ScoreVector
		status Status
	}{
		{
			name:   "all zero allows",
			scores: ScoreVector{UserTrust: 0.5},
			status: StatusAllow,
		},
		{
			name:   "toxicity rejects",
			scores: ScoreVector{Toxicity: 1.0},
			status: StatusReject,
		},
		{
			// toxicity outranks every later rule
			name:   "toxicity rejects even with high spam",
			scores: ScoreVector{Toxicity: 1.0, Spam: 0.9, PHI: 0.9, UserTrust: 1.0},
			status: StatusReject,
		},
		{
			name:   "high phi quarantines",
			scores: ScoreVector{PHI: 0.6, UserTrust: 0.5},
			status: StatusQuarantine,
		},
		{
			name:   "sales pitch from untrusted account rejects",
			scores: ScoreVector{SalesPitch: 0.8, UserTrust: 0.4},
			status: StatusReject,
		},
		{
			name:   "sales pitch from trusted account is not rejected",
			scores: ScoreVector{SalesPitch: 0.8, UserTrust: 0.5},
			status: StatusAllow,
		},
		{
			name:   "high spam quarantines",
			scores: ScoreVector{Spam: 0.8, UserTrust: 0.5},
			status: StatusQuarantine,
		},
		{
			name:   "phi with links quarantines",
			scores: ScoreVector{PHI: 0.3, LinkRisk: 0.5, UserTrust: 0.5},
			status: StatusQuarantine,
		},
		{
			name:   "spam with sales pitch quarantines",
			scores: ScoreVector{Spam: 0.5, SalesPitch: 0.6, UserTrust: 0.5},
			status: StatusQuarantine,
		},
		{
			name:   "low phi soft blocks",
			scores: ScoreVector{PHI: 0.25, UserTrust: 0.5},
			status: StatusSoftBlock,
		},
		{
			name:   "low spam soft blocks",
			scores: ScoreVector{Spam: 0.35, UserTrust: 0.5},
			status: StatusSoftBlock,
		},
		{
			name:   "link risk soft blocks",
			scores: ScoreVector{LinkRisk: 0.55, UserTrust: 0.5},
			status: StatusSoftBlock,
		},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.status, Decide(fix.scores), fix.name)
	}
}

func TestDeriveFlags(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{}, deriveFlags(ScoreVector{UserTrust: 0.5}))

	flags := deriveFlags(ScoreVector{
		PHI:        0.4,
		Spam:       0.6,
		SalesPitch: 0.7,
		Toxicity:   1.0,
		LinkRisk:   0.7,
	})
	assert.Equal([]string{
		FlagPHIDetected,
		FlagSpamDetected,
		FlagSalesPitch,
		FlagToxicity,
		FlagSuspiciousLinks,
	}, flags)

	// flag thresholds are exclusive bounds
	assert.Equal([]string{}, deriveFlags(ScoreVector{
		PHI:        0.3,
		Spam:       0.5,
		SalesPitch: 0.6,
		LinkRisk:   0.6,
		UserTrust:  0.5,
	}))
}
