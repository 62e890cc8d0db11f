// Package trust derives a per-user trust score from account tenure. The
// score only ever adjusts the sales-pitch rejection rule in the decision
// cascade.
package trust

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/haven-social/scrubber/cachestore"
)

const (
	// BaseScore is the starting score for any known account.
	BaseScore = 0.7
	// DefaultScore is returned when no user id is supplied or the lookup
	// fails; it never fails the scan.
	DefaultScore = 0.5

	tenureBonus       = 0.1
	establishedTenure = 30 * 24 * time.Hour
	veteranTenure     = 90 * 24 * time.Hour
)

// Provider computes trust scores, optionally caching them.
type Provider struct {
	Users  UserStore
	Cache  cachestore.CacheStore
	Logger *slog.Logger
}

func (p *Provider) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// Score returns the trust score for a user, in [0, 1]. Lookup failures and
// unknown users degrade to DefaultScore.
func (p *Provider) Score(ctx context.Context, userID string) float64 {
	if userID == "" || p.Users == nil {
		return DefaultScore
	}

	if p.Cache != nil {
		cached, err := p.Cache.Get(ctx, "trust", userID)
		if err != nil {
			p.logger().Warn("trust cache read failed", "err", err, "userID", userID)
		} else if cached != "" {
			if score, err := strconv.ParseFloat(cached, 64); err == nil {
				cacheHits.Inc()
				return score
			}
		}
	}
	cacheMisses.Inc()

	score := p.compute(ctx, userID)

	if p.Cache != nil {
		// fixed precision keeps cached values short and free of float noise
		if err := p.Cache.Set(ctx, "trust", userID, strconv.FormatFloat(score, 'f', 2, 64)); err != nil {
			p.logger().Warn("trust cache write failed", "err", err, "userID", userID)
		}
	}
	return score
}

func (p *Provider) compute(ctx context.Context, userID string) float64 {
	userFetches.Inc()
	rec, err := p.Users.GetUser(ctx, userID)
	if err != nil {
		lookupErrors.Inc()
		p.logger().Warn("user lookup failed, using default trust score", "err", err, "userID", userID)
		return DefaultScore
	}
	if rec == nil {
		return DefaultScore
	}

	score := BaseScore
	tenure := time.Since(rec.CreatedAt)
	if tenure > establishedTenure {
		score += tenureBonus
	}
	if tenure > veteranTenure {
		score += tenureBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
