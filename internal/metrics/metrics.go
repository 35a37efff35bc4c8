// Package metrics holds the Prometheus instruments of the login flow. All
// collectors are registered with the default registry, which the server
// exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a login submit.
const (
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeSucceeded = "succeeded"

	// OutcomeNone is a sign-in that neither failed nor navigated.
	OutcomeNone = "none"
)

var (
	LoginAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "painel",
			Name:      "login_attempts_total",
			Help:      "Login form submits by outcome.",
		}, []string{"outcome"})

	SessionsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "painel",
			Name:      "sessions_created_total",
			Help:      "Cumulative number of sessions started.",
		})
)

func init() {
	prometheus.MustRegister(
		LoginAttemptsTotal,
		SessionsCreatedTotal,
	)
}

// RecordLogin counts one login submit with the given outcome.
func RecordLogin(outcome string) {
	LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}
