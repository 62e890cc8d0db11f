package trust

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var userFetches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_trust_user_fetches",
	Help: "Number of user record reads for trust scoring",
})

var lookupErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_trust_lookup_errors",
	Help: "Number of user lookups that failed and degraded to the default score",
})

var cacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_trust_cache_hits",
	Help: "Number of trust scores served from cache",
})

var cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_trust_cache_misses",
	Help: "Number of trust scores computed fresh",
})
