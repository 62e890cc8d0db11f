package trust

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haven-social/scrubber/cachestore"
)

type brokenUserStore struct{}

func (brokenUserStore) GetUser(ctx context.Context, userID string) (*UserRecord, error) {
	return nil, errors.New("db offline")
}

func TestProviderScoreTenure(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	users := NewMemUserStore()
	users.Users["fresh"] = UserRecord{ID: "fresh", CreatedAt: time.Now().Add(-24 * time.Hour)}
	users.Users["established"] = UserRecord{ID: "established", CreatedAt: time.Now().Add(-45 * 24 * time.Hour)}
	users.Users["veteran"] = UserRecord{ID: "veteran", CreatedAt: time.Now().Add(-120 * 24 * time.Hour)}
	users.Users["ancient"] = UserRecord{ID: "ancient", CreatedAt: time.Now().Add(-5 * 365 * 24 * time.Hour)}

	p := &Provider{Users: users}

	assert.InDelta(0.7, p.Score(ctx, "fresh"), 0.001)
	assert.InDelta(0.8, p.Score(ctx, "established"), 0.001)
	assert.InDelta(0.9, p.Score(ctx, "veteran"), 0.001)
	assert.InDelta(0.9, p.Score(ctx, "ancient"), 0.001)
}

func TestProviderScoreDegrades(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	p := &Provider{Users: NewMemUserStore()}

	// no user id supplied
	assert.InDelta(DefaultScore, p.Score(ctx, ""), 0.001)
	// unknown user
	assert.InDelta(DefaultScore, p.Score(ctx, "nobody"), 0.001)
	// lookup failure
	p = &Provider{Users: brokenUserStore{}}
	assert.InDelta(DefaultScore, p.Score(ctx, "whoever"), 0.001)
}

func TestProviderScoreCaching(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	users := NewMemUserStore()
	users.Users["u1"] = UserRecord{ID: "u1", CreatedAt: time.Now().Add(-45 * 24 * time.Hour)}
	cache := cachestore.NewMemCacheStore(10, time.Minute)
	p := &Provider{Users: users, Cache: cache}

	assert.InDelta(0.8, p.Score(ctx, "u1"), 0.001)

	// a cached value short-circuits the store entirely
	assert.NoError(cache.Set(ctx, "trust", "u2", "0.42"))
	assert.InDelta(0.42, p.Score(ctx, "u2"), 0.001)

	// and the first computation is now cached, at fixed precision
	cached, err := cache.Get(ctx, "trust", "u1")
	assert.NoError(err)
	assert.Equal("0.80", cached)

	parsed, err := strconv.ParseFloat(cached, 64)
	assert.NoError(err)
	assert.InDelta(0.8, parsed, 0.001)
}

func TestMemUserStore(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemUserStore()
	rec, err := s.GetUser(ctx, "missing")
	assert.NoError(err)
	assert.Nil(rec)

	when := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Users["u"] = UserRecord{ID: "u", CreatedAt: when}
	rec, err = s.GetUser(ctx, "u")
	assert.NoError(err)
	if assert.NotNil(rec) {
		assert.Equal(when, rec.CreatedAt)
	}
}
