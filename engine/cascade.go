package engine

// Decide converts a score vector into a status. Rules are evaluated top to
// bottom and the first match wins; do not reorder.
func Decide(s ScoreVector) Status {
	switch {
	case s.Toxicity > 0:
		return StatusReject
	case s.PHI > 0.5:
		return StatusQuarantine
	case s.SalesPitch > 0.7 && s.UserTrust < 0.5:
		return StatusReject
	case s.Spam > 0.7:
		return StatusQuarantine
	case (s.PHI > 0.2 && s.LinkRisk > 0.4) || (s.Spam > 0.4 && s.SalesPitch > 0.5):
		return StatusQuarantine
	case s.PHI > 0.2 || s.Spam > 0.3 || s.LinkRisk > 0.5:
		return StatusSoftBlock
	default:
		return StatusAllow
	}
}

// deriveFlags maps scores to informational flags. Thresholds here are
// independent of the cascade's.
func deriveFlags(s ScoreVector) []string {
	flags := []string{}
	if s.PHI > 0.3 {
		flags = append(flags, FlagPHIDetected)
	}
	if s.Spam > 0.5 {
		flags = append(flags, FlagSpamDetected)
	}
	if s.SalesPitch > 0.6 {
		flags = append(flags, FlagSalesPitch)
	}
	if s.Toxicity > 0 {
		flags = append(flags, FlagToxicity)
	}
	if s.LinkRisk > 0.6 {
		flags = append(flags, FlagSuspiciousLinks)
	}
	return flags
}
