package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var scansProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrubber_scans_processed",
	Help: "Number of scans processed, by resulting status",
}, []string{"status"})

var scansInvalid = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_scans_invalid",
	Help: "Number of scans rejected for invalid input",
})

var scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "scrubber_scan_duration_sec",
	Help: "Total duration of scan processing",
})
