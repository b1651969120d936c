// Package metrics defines the custom Prometheus metrics of the clinic portal.
// It is the single source of truth for metric names, labels, and help strings.
//
// Call Register once per registry before serving traffic.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vetclinic"

// ── Authentication ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of portal login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginDuration measures the round trip to the authentication endpoint.
var LoginDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login requests including the authentication endpoint call.",
		Buckets:   prometheus.DefBuckets,
	},
)

// SessionRehydrationsTotal counts session restores at request start.
// Label:
//   - result: "restored", "anonymous", "corrupt" or "failed"
var SessionRehydrationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rehydrations_total",
		Help:      "Total number of session rehydrations, by result.",
	},
	[]string{"result"},
)

// ── Authorization ────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard verdicts.
// Labels:
//   - state:  LOADING, AUTHORIZED, UNAUTHENTICATED or FORBIDDEN
//   - reason: "role", "feature" or "" for non-denials
var GuardDecisionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by state and denial reason.",
	},
	[]string{"state", "reason"},
)

var collectors = []prometheus.Collector{
	LoginsTotal,
	LoginDuration,
	SessionRehydrationsTotal,
	GuardDecisionsTotal,
}

// Register adds every collector to reg. Collectors already present are left
// in place, so calling it twice on the same registry is harmless.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
