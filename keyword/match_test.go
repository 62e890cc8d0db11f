package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedMatch(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  string
	}{
		{text: "", out: ""},
		{text: "hello", out: ""},
		{text: "fuck", out: "fuck"},
		{text: "youarestupid", out: "stupid"},
		{text: "whatabitchmove", out: "bitch"},
		// longest stem wins over its substrings
		{text: "bullshit", out: "bullshit"},
		{text: "asshole", out: "asshole"},
		// leetspeak residue variants from the curated list
		{text: "fack", out: "fack"},
		{text: "btch", out: "btch"},
		// collapse-to-2 residue
		{text: "fuuck", out: "fuuck"},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, NormalizedMatch(fix.text))
	}
}

func TestNormalizedMatchShortStems(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  string
	}{
		// short stems count standalone or with clear context
		{text: "ass", out: "ass"},
		{text: "kys", out: "kys"},
		{text: ",ass,", out: "ass"},
		// but not inside longer innocuous words
		{text: "class", out: ""},
		{text: "assessment", out: ""},
		{text: "kickass", out: ""},
		{text: "passage", out: ""},
		{text: "fagottobassoon", out: ""},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, NormalizedMatch(fix.text))
	}
}

func TestNormalizeMatchRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// obfuscated variants must each independently resolve to a hit
	toxic := []string{
		"f u c k",
		"f4ck",
		"sh1t",
		"fuuuuck",
		"s-t-u-p-i-d",
		"b!tch",
	}
	for _, text := range toxic {
		assert.NotEqual("", NormalizedMatch(Normalize(text)), "input: %q", text)
	}

	clean := []string{
		"have a wonderful day",
		"the class assessment passed",
		"shared a helpful link",
	}
	for _, text := range clean {
		assert.Equal("", NormalizedMatch(Normalize(text)), "input: %q", text)
	}
}
