package pagegate

import (
	"github.com/pagegate/pagegate/digest"
	"github.com/pagegate/pagegate/internal/authcache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Gate defines a public type used by pagegate APIs.
//
// Gate instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Gate struct {
	config Config

	store   Store
	hasher  digest.Hasher
	cache   *authcache.Cache
	group   singleflight.Group
	logger  *zap.Logger
	audit   *auditDispatcher
	metrics *Metrics

	verifier *verifier
}

// Close describes the close operation and its observable behavior.
//
// Close drains and stops the audit dispatcher. Idempotent; gate methods
// called after Close still work, their audit events are simply dropped.
func (g *Gate) Close() {
	if g == nil {
		return
	}
	g.audit.Close()
}

// UIHints describes the uihints operation and its observable behavior.
//
// UIHints does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) UIHints() UIHints {
	if g == nil {
		return UIHints{}
	}
	return UIHints{
		PasswordHint: g.config.UI.PasswordHint,
		PageTitle:    g.config.UI.PageTitle,
		ColorTheme:   g.config.UI.ColorTheme,
	}
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) MetricsSnapshot() MetricsSnapshot {
	if g == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return g.metrics.Snapshot()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (g *Gate) AuditDropped() uint64 {
	if g == nil {
		return 0
	}
	return g.audit.Dropped()
}

// resolveIdentifier picks the raw material for storage key derivation: the
// configured override when present, else the configured password. The
// identifier itself is never persisted.
func (g *Gate) resolveIdentifier() string {
	if g.config.Storage.IdentifierOverride != "" {
		return g.config.Storage.IdentifierOverride
	}
	return g.config.Gate.Password
}
