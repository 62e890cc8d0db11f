package detect

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type wordDict struct {
	words []string
}

func (d wordDict) IsProfane(text string) (bool, error) {
	lower := strings.ToLower(text)
	for _, w := range d.words {
		if strings.Contains(lower, w) {
			return true, nil
		}
	}
	return false, nil
}

type brokenDict struct{}

func (brokenDict) IsProfane(text string) (bool, error) {
	return false, errors.New("dictionary unavailable")
}

func TestCheckToxicityBinary(t *testing.T) {
	assert := assert.New(t)

	toxic := []string{
		"This is stupid and hateful content",
		"what an idiot",
		"fuck this",
		// obfuscation-resistant normalized matching
		"f u c k",
		"f4ck",
		"sh1t",
		"fuuuuck off",
	}
	for _, text := range toxic {
		res := CheckToxicity(text, nil)
		assert.Equal(1.0, res.Score, "text: %q", text)
		assert.True(res.Profane, "text: %q", text)
	}

	clean := []string{
		"",
		"have a wonderful day",
		"thanks for the helpful advice",
		"the class assessment passed",
	}
	for _, text := range clean {
		res := CheckToxicity(text, nil)
		assert.Equal(0.0, res.Score, "text: %q", text)
		assert.False(res.Profane, "text: %q", text)
	}
}

func TestCheckToxicityDictionarySignal(t *testing.T) {
	assert := assert.New(t)

	dict := wordDict{words: []string{"zebra"}}

	// the dictionary alone is conclusive
	res := CheckToxicity("a zebra walked by", dict)
	assert.Equal(1.0, res.Score)

	// absence of a dictionary hit falls through to the other signals
	res = CheckToxicity("totally fine text", dict)
	assert.Equal(0.0, res.Score)
}

func TestCheckToxicityDictionaryFailure(t *testing.T) {
	assert := assert.New(t)

	// a failing dictionary disables only that signal
	res := CheckToxicity("perfectly pleasant", brokenDict{})
	assert.Equal(0.0, res.Score)

	res = CheckToxicity("you stupid fool", brokenDict{})
	assert.Equal(1.0, res.Score)
}
