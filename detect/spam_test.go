package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRepeatRuns(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  int
	}{
		{text: "", out: 0},
		{text: "hello", out: 0},
		{text: "loool", out: 0},
		{text: "!!!!!", out: 1},
		{text: "!!!!!!!!!!", out: 1},
		{text: "wow!!!!! nice!!!!!", out: 2},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, countRepeatRuns(fix.text), "text: %q", fix.text)
	}
}

func TestCheckSpam(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text  string
		score float64
	}{
		{text: "", score: 0},
		{text: "just a normal message", score: 0},
		{text: "BUY NOW!!!!! LIMITED TIME!!!!!", score: 0.6},
		{text: "free prize! claim it today", score: 0.8},
		{text: "see www.example.com", score: 0.5},
		// link bait plus a raw link occurrence
		{text: "click here http://sketchy.example", score: 1.0},
	}

	for _, fix := range fixtures {
		assert.InDelta(fix.score, CheckSpam(fix.text), 0.001, "text: %q", fix.text)
	}
}

func TestCheckSpamFamilyCap(t *testing.T) {
	assert := assert.New(t)

	// five runs, capped at three occurrences: 0.3 * 3
	assert.InDelta(0.9, CheckSpam("aaaaa bbbbb ccccc ddddd eeeee"), 0.001)
}
