package pagegate

import (
	"context"
	"crypto/subtle"

	"github.com/pagegate/pagegate/internal/authcache"
	"go.uber.org/zap"
)

// IsAuthorized describes the isauthorized operation and its observable behavior.
//
// IsAuthorized reports whether identifier was previously marked authorized.
// The in-process cache is consulted before the store, so repeated checks
// within one process lifetime cost no store round-trip and a check that
// follows MarkAuthorized observes the write. Without a configured store it
// returns false. Every storage or hashing failure is swallowed and treated
// as not authorized; nothing propagates to the caller.
func (g *Gate) IsAuthorized(ctx context.Context, identifier string) bool {
	if g == nil || g.store == nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pair, err := derivePair(g.hasher, identifier)
	if err != nil {
		g.metrics.Inc(MetricAuthorizeError)
		g.logger.Warn("authorization key derivation failed", zap.Error(err))
		g.emitEvent(ctx, auditEventStorageError, false, "", err)
		return false
	}

	switch g.cache.Get(pair.Key) {
	case authcache.Authorized:
		g.metrics.Inc(MetricAuthorizeCacheHit)
		g.logger.Debug("authorization cache hit", zap.Bool("authorized", true))
		return true
	case authcache.Denied:
		g.metrics.Inc(MetricAuthorizeCacheHit)
		g.logger.Debug("authorization cache hit", zap.Bool("authorized", false))
		return false
	}

	// Concurrent first checks for the same key collapse into one store
	// lookup. Results are unchanged either way; this only avoids duplicate
	// work before the cache is populated.
	result, _, _ := g.group.Do(pair.Key, func() (any, error) {
		return g.lookupAuthorized(ctx, pair), nil
	})
	authorized, _ := result.(bool)
	return authorized
}

func (g *Gate) lookupAuthorized(ctx context.Context, pair derivedPair) bool {
	stored, ok, err := g.store.Get(ctx, pair.Key)
	if err != nil {
		// Fail closed without caching: a transient backend fault must not
		// pin this key to denied for the rest of the process lifetime.
		g.metrics.Inc(MetricAuthorizeError)
		g.logger.Warn("authorization lookup failed", zap.Error(err))
		g.emitEvent(ctx, auditEventStorageError, false, "", err)
		return false
	}

	authorized := ok && subtle.ConstantTimeCompare([]byte(stored), []byte(pair.Value)) == 1
	if authorized {
		g.cache.Set(pair.Key, authcache.Authorized)
		g.metrics.Inc(MetricAuthorizeStoreHit)
	} else {
		g.cache.Set(pair.Key, authcache.Denied)
		g.metrics.Inc(MetricAuthorizeMiss)
	}
	g.emitEvent(ctx, auditEventAuthorizeCheck, authorized, "", nil)
	return authorized
}

// MarkAuthorized describes the markauthorized operation and its observable behavior.
//
// MarkAuthorized persists the derived pair for identifier and updates the
// in-process cache so a subsequent IsAuthorized observes the write. Without
// a configured store it is a no-op. Storage failures are swallowed; the
// cache is then left untouched and the user is simply re-prompted on the
// next visit.
func (g *Gate) MarkAuthorized(ctx context.Context, identifier string) {
	if g == nil || g.store == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pair, err := derivePair(g.hasher, identifier)
	if err != nil {
		g.metrics.Inc(MetricMarkFailed)
		g.logger.Warn("authorization key derivation failed", zap.Error(err))
		g.emitEvent(ctx, auditEventStorageError, false, "", err)
		return
	}

	if err := g.store.Set(ctx, pair.Key, pair.Value); err != nil {
		g.metrics.Inc(MetricMarkFailed)
		g.logger.Warn("authorization persist failed", zap.Error(err))
		g.emitEvent(ctx, auditEventStorageError, false, "", err)
		return
	}

	g.cache.Set(pair.Key, authcache.Authorized)
	g.metrics.Inc(MetricMarkAuthorized)
	g.emitEvent(ctx, auditEventAuthorizeGrant, true, "", nil)
}

// Authorized describes the authorized operation and its observable behavior.
//
// Authorized is IsAuthorized for the gate's own configured identifier. It is
// the check a rendering layer runs to decide whether to show gated content.
func (g *Gate) Authorized(ctx context.Context) bool {
	if g == nil {
		return false
	}
	return g.IsAuthorized(ctx, g.resolveIdentifier())
}
