package pagegate

import (
	"net/http"

	"github.com/pagegate/pagegate/digest"
	"github.com/pagegate/pagegate/internal/authcache"
	"go.uber.org/zap"
)

// Builder defines a public type used by pagegate APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	store      Store
	httpClient HTTPDoer
	httpSet    bool
	hasher     digest.Hasher
	logger     *zap.Logger
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore describes the withstore operation and its observable behavior.
//
// WithStore injects the persistent key-value store. A gate built without a
// store behaves like one in a context without persistent storage: every
// check fails closed and every write is a no-op.
func (b *Builder) WithStore(s Store) *Builder {
	b.store = s
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient injects the transport for remote verification. Passing nil
// explicitly models a context with no network runtime: verification then
// fails with ReasonNoRuntimeContext. When WithHTTPClient is never called,
// Build installs a default client.
func (b *Builder) WithHTTPClient(c HTTPDoer) *Builder {
	b.httpClient = c
	b.httpSet = true
	return b
}

// WithHasher describes the withhasher operation and its observable behavior.
//
// WithHasher injects the digest implementation used for key derivation.
// Defaults to [digest.SHA256]. Substituting [digest.Rolling] is an explicit
// opt-in to the weak non-cryptographic fallback; switching hashers changes
// every derived storage key.
func (b *Builder) WithHasher(h digest.Hasher) *Builder {
	b.hasher = h
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
//
// WithLogger injects a structured logger. Defaults to zap.NewNop. The gate
// never logs passwords, identifiers, or derived pairs.
func (b *Builder) WithLogger(l *zap.Logger) *Builder {
	b.logger = l
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build is single-use; a second call returns ErrBuilderUsed.
func (b *Builder) Build() (*Gate, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	applyConfigDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hasher := b.hasher
	if hasher == nil {
		hasher = digest.NewSHA256()
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := b.httpClient
	if !b.httpSet {
		httpClient = &http.Client{}
	}

	gate := &Gate{
		config:  cfg,
		store:   b.store,
		hasher:  hasher,
		cache:   authcache.New(),
		logger:  logger,
		metrics: NewMetrics(cfg.Metrics),
	}
	gate.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	gate.verifier = newVerifier(httpClient, cfg.Verify)

	b.built = true

	return gate, nil
}
