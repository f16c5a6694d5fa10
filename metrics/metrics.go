package metrics

import "github.com/prometheus/client_golang/prometheus"

// Invocations counts dispatched invocations by integration pattern and outcome.
var Invocations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "modalbridge",
		Subsystem: "dispatcher",
		Name:      "invocations_total",
		Help:      "Total of dispatched Modal function invocations.",
	}, []string{"mode", "status"})

// InvocationDuration is a histogram of the time spent in a single invocation, including
// credential lookup and function resolution. For spawn mode it ends when the call is submitted.
var InvocationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "modalbridge",
		Subsystem: "dispatcher",
		Name:      "invocation_duration_milliseconds",
		Help:      "Bucketed histogram of Modal function invocation duration.",
		Buckets:   prometheus.ExponentialBuckets(1, 1.5, 30),
	}, []string{"mode"})

// RequestDuration is a histogram with buckets that
// are incrementally 10% larger than the last, with valid
// values ranging from 0.1 to ~62370
var RequestDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: "modalbridge",
		Subsystem: "localapi",
		Name:      "request_duration_milliseconds",
		Help:      "Request duration distribution of the local development API.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 1.1, 140),
	})

// Register registers all collectors.
func Register(registerer prometheus.Registerer) {
	registerer.MustRegister(Invocations)
	registerer.MustRegister(InvocationDuration)
	registerer.MustRegister(RequestDuration)
}
