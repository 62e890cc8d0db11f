// Package capability defines optional collaborator interfaces injected into
// the moderation engine. A nil capability disables the corresponding signal;
// a capability failure disables it for that one call. Neither ever fails a
// scan.
package capability

// ProfanityDict answers whether a piece of text is profane, backed by an
// external dictionary.
type ProfanityDict interface {
	IsProfane(text string) (bool, error)
}

// PhoneChecker validates that a candidate string is a real phone number for
// a region (eg, "US").
type PhoneChecker interface {
	IsValid(candidate, region string) (bool, error)
}
