package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(promResponseDurationMilliseconds, promValuesServed)
}

var promResponseDurationMilliseconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "pcgrand_http_response_duration_milliseconds",
		Help:    "The duration of time it takes to receive and write a response to a draw request",
		Buckets: prometheus.ExponentialBuckets(0.125, 2, 10),
	},
	[]string{"action", "error"},
)

var promValuesServed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pcgrand_http_values_served_total",
		Help: "The number of random values written to clients",
	},
	[]string{"action"},
)

// recordResponseDuration records the duration of time to respond to a request
// in milliseconds.
func recordResponseDuration(action string, err error, duration time.Duration) {
	var errString string
	if err != nil {
		if _, ok := err.(ClientError); ok {
			// Messages carry request values; keep the label set bounded.
			errString = "client error"
		} else {
			errString = "internal error"
		}
	}

	promResponseDurationMilliseconds.
		WithLabelValues(action, errString).
		Observe(float64(duration.Nanoseconds()) / float64(time.Millisecond))
}

// recordValuesServed counts the values of a successful response.
func recordValuesServed(action string, n int) {
	promValuesServed.WithLabelValues(action).Add(float64(n))
}
