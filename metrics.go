package pagegate

import "sync/atomic"

// MetricID defines a public type used by pagegate APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricAuthorizeCacheHit is an exported constant or variable used by the gate.
	MetricAuthorizeCacheHit MetricID = iota
	// MetricAuthorizeStoreHit is an exported constant or variable used by the gate.
	MetricAuthorizeStoreHit
	// MetricAuthorizeMiss is an exported constant or variable used by the gate.
	MetricAuthorizeMiss
	// MetricAuthorizeError is an exported constant or variable used by the gate.
	MetricAuthorizeError
	// MetricMarkAuthorized is an exported constant or variable used by the gate.
	MetricMarkAuthorized
	// MetricMarkFailed is an exported constant or variable used by the gate.
	MetricMarkFailed
	// MetricVerifySuccess is an exported constant or variable used by the gate.
	MetricVerifySuccess
	// MetricVerifyInvalid is an exported constant or variable used by the gate.
	MetricVerifyInvalid
	// MetricVerifyFailure is an exported constant or variable used by the gate.
	MetricVerifyFailure
	// MetricAuthenticateGranted is an exported constant or variable used by the gate.
	MetricAuthenticateGranted
	// MetricAuthenticateDenied is an exported constant or variable used by the gate.
	MetricAuthenticateDenied
	// MetricAuthenticateUnavailable is an exported constant or variable used by the gate.
	MetricAuthenticateUnavailable

	metricIDCount
)

// Metrics defines a public type used by pagegate APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled: cfg.Enabled,
	}
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot defines a public type used by pagegate APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, int(metricIDCount)),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = m.counters[id].Load()
	}
	return s
}
