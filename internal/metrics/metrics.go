package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "darshan",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		},
		[]string{"result"},
	)

	registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "darshan",
			Name:      "registrations_total",
			Help:      "Successful account registrations.",
		},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "darshan",
			Name:      "bookings_total",
			Help:      "Committed bookings by subject type.",
		},
		[]string{"subject_type"},
	)

	assistantRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "darshan",
			Name:      "assistant_requests_total",
			Help:      "Assistant collaborator requests by status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(logins, registrations, bookings, assistantRequests)
	})
}

func IncLogin(result string) {
	logins.WithLabelValues(result).Inc()
}

func IncRegistration() {
	registrations.Inc()
}

func IncBooking(subjectType string) {
	bookings.WithLabelValues(subjectType).Inc()
}

func IncAssistant(status string) {
	assistantRequests.WithLabelValues(status).Inc()
}
