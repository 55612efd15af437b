package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts session lifecycle events. ReuseDetected is the one worth
// alerting on: every increment is a revoked token family.
type Metrics struct {
	SessionsIssued prometheus.Counter
	TokensRotated  prometheus.Counter
	ReuseDetected  prometheus.Counter
	Logouts        prometheus.Counter
}

// New registers the session counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "session_auth",
			Name:      "sessions_issued_total",
			Help:      "Number of new session families issued at login.",
		}),
		TokensRotated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "session_auth",
			Name:      "tokens_rotated_total",
			Help:      "Number of successful refresh-token rotations.",
		}),
		ReuseDetected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "session_auth",
			Name:      "reuse_detected_total",
			Help:      "Number of refresh-token reuse detections (families revoked).",
		}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "session_auth",
			Name:      "logouts_total",
			Help:      "Number of logout calls.",
		}),
	}
}
