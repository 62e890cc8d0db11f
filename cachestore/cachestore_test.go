package cachestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCacheStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCacheStore(10, time.Hour)

	v, err := cs.Get(ctx, "trust", "missing")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(cs.Set(ctx, "trust", "u1", "0.8"))
	v, err = cs.Get(ctx, "trust", "u1")
	assert.NoError(err)
	assert.Equal("0.8", v)

	// names partition the key space
	v, err = cs.Get(ctx, "other", "u1")
	assert.NoError(err)
	assert.Equal("", v)

	assert.NoError(cs.Purge(ctx, "trust", "u1"))
	v, err = cs.Get(ctx, "trust", "u1")
	assert.NoError(err)
	assert.Equal("", v)
}

func TestMemCacheStoreExpiry(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCacheStore(10, 50*time.Millisecond)
	assert.NoError(cs.Set(ctx, "trust", "u1", "0.9"))

	time.Sleep(100 * time.Millisecond)
	v, err := cs.Get(ctx, "trust", "u1")
	assert.NoError(err)
	assert.Equal("", v)
}
