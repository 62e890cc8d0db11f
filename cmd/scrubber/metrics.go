package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var scanRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_api_scan_requests",
	Help: "Number of scan API requests received",
})

var precheckRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_api_precheck_requests",
	Help: "Number of precheck API requests received",
})

var sanitizeRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_api_sanitize_requests",
	Help: "Number of sanitize API requests received",
})
