package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})

	unregistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})

	rejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "rejected_requests_total",
		Help:      "Signup and unregister requests rejected by business rules.",
	}, []string{"operation", "reason"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectedTotal)
}

// RecordSignup counts a successful signup.
func RecordSignup() {
	signupsTotal.Inc()
}

// RecordUnregistration counts a successful unregistration.
func RecordUnregistration() {
	unregistrationsTotal.Inc()
}

// RecordRejection counts a rejected request by operation and reason.
func RecordRejection(operation, reason string) {
	rejectedTotal.WithLabelValues(operation, reason).Inc()
}
