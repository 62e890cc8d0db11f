package capability

import (
	goaway "github.com/TwiN/go-away"
)

// GoAwayDict is a ProfanityDict backed by the go-away wordlists.
type GoAwayDict struct {
	detector *goaway.ProfanityDetector
}

var _ ProfanityDict = (*GoAwayDict)(nil)

func NewGoAwayDict() *GoAwayDict {
	return &GoAwayDict{
		detector: goaway.NewProfanityDetector(),
	}
}

func (d *GoAwayDict) IsProfane(text string) (bool, error) {
	return d.detector.IsProfane(text), nil
}
