package detect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dictErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_profanity_dict_errors",
	Help: "Number of profanity dictionary capability failures (signal skipped)",
})

var phoneCheckErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrubber_phone_check_errors",
	Help: "Number of phone validation capability failures (candidate skipped)",
})
