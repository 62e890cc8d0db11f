// Package engine assembles the moderation verdict: it fans out to the score
// detectors and the trust provider, derives flags and detected spans, and
// applies the decision cascade.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/haven-social/scrubber/capability"
	"github.com/haven-social/scrubber/detect"
	"github.com/haven-social/scrubber/helpers"
	"github.com/haven-social/scrubber/trust"
)

// Engine scans submitted text and issues moderation verdicts. All detectors
// operate on the raw input text as supplied; sanitization is a storage-path
// concern, not a pre-scoring step.
//
// Profanity and Phones are optional capabilities; either may be nil.
type Engine struct {
	Logger    *slog.Logger
	Trust     *trust.Provider
	Profanity capability.ProfanityDict
	Phones    capability.PhoneChecker
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Scan classifies one piece of text. It always returns a well-formed result:
// invalid input yields a REJECT result, collaborator failures degrade to
// defaults, and nothing propagates as an error.
func (e *Engine) Scan(ctx context.Context, input ModerationInput) (res *ModerationResult) {
	start := time.Now()
	// recover any panics from detector execution, like an HTTP server would
	defer func() {
		if r := recover(); r != nil {
			e.logger().Error("moderation scan panic", "err", r, "textHash", helpers.HashOfString(input.Text))
			res = e.rejectResult(input, "Invalid input")
		}
		scanDuration.Observe(time.Since(start).Seconds())
		scansProcessed.WithLabelValues(string(res.Status)).Inc()
	}()

	if input.Text == "" {
		scansInvalid.Inc()
		return e.rejectResult(input, "Invalid input")
	}

	var (
		phi        detect.PHIResult
		spam       float64
		sales      detect.SalesResult
		links      detect.LinkResult
		tox        detect.ToxicityResult
		trustScore = trust.DefaultScore
	)

	// detectors are pure and CPU-bound; the trust fetch is the only I/O.
	// Run everything concurrently and join before the cascade.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		phi = detect.CheckPHI(input.Text, e.Phones)
		return nil
	})
	g.Go(func() error {
		spam = detect.CheckSpam(input.Text)
		return nil
	})
	g.Go(func() error {
		sales = detect.CheckSalesPitch(input.Text)
		return nil
	})
	g.Go(func() error {
		links = detect.CheckLinks(input.Text)
		return nil
	})
	g.Go(func() error {
		tox = detect.CheckToxicity(input.Text, e.Profanity)
		return nil
	})
	g.Go(func() error {
		if e.Trust != nil {
			trustScore = e.Trust.Score(gctx, input.UserID)
		}
		return nil
	})
	_ = g.Wait()

	scores := ScoreVector{
		PHI:        phi.Score,
		Spam:       spam,
		SalesPitch: sales.Score,
		Toxicity:   tox.Score,
		LinkRisk:   links.Score,
		UserTrust:  trustScore,
	}
	res = &ModerationResult{
		Status:        Decide(scores),
		Scores:        scores,
		Flags:         deriveFlags(scores),
		DetectedSpans: phiSpans(input.Text, phi.Detections),
		Timestamp:     time.Now().UTC(),
		Context:       input.Context,
	}
	e.canonicalLogLine(input, res)
	return res
}

// ScanBatch scans a sequence of inputs, one result per input. Each item
// degrades independently; a bad item never affects its neighbors.
func (e *Engine) ScanBatch(ctx context.Context, inputs []ModerationInput) []*ModerationResult {
	out := make([]*ModerationResult, len(inputs))
	for i, input := range inputs {
		out[i] = e.Scan(ctx, input)
	}
	return out
}

func (e *Engine) rejectResult(input ModerationInput, reason string) *ModerationResult {
	return &ModerationResult{
		Status:        StatusReject,
		Flags:         []string{},
		DetectedSpans: []DetectedSpan{},
		Timestamp:     time.Now().UTC(),
		Context:       input.Context,
		Reason:        reason,
	}
}

// phiSpans locates each PHI match in the original text. The offset is the
// first occurrence of the matched substring; repeated identical matches
// collapse into a single span there, and consumers treat spans as
// approximate.
func phiSpans(text string, dets []detect.PHIDetection) []DetectedSpan {
	spans := []DetectedSpan{}
	for _, d := range dets {
		for _, m := range helpers.DedupeStrings(d.Matches) {
			start := strings.Index(text, m)
			spans = append(spans, DetectedSpan{
				Text:    m,
				Type:    "phi",
				Subtype: d.Subtype,
				Start:   start,
				End:     start + len(m),
			})
		}
	}
	return spans
}

// one log line per scan; text is referenced by hash only
func (e *Engine) canonicalLogLine(input ModerationInput, res *ModerationResult) {
	e.logger().Info("scan verdict",
		"textHash", helpers.HashOfString(input.Text),
		"userID", input.UserID,
		"status", res.Status,
		"flags", res.Flags,
		"phi", res.Scores.PHI,
		"spam", res.Scores.Spam,
		"salesPitch", res.Scores.SalesPitch,
		"toxicity", res.Scores.Toxicity,
		"linkRisk", res.Scores.LinkRisk,
		"userTrust", res.Scores.UserTrust,
	)
}
