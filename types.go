package pagegate

import (
	"context"
	"io"
	"net/http"

	internalaudit "github.com/pagegate/pagegate/internal/audit"
)

// Store defines a public type used by pagegate APIs.
//
// Store is the persistent key-value collaborator the gate writes its derived
// pair into. Implementations must be safe for concurrent use. Get reports a
// missing key with ok=false and a nil error; errors are reserved for backend
// faults. The gate never deletes, enumerates, or expires keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// HTTPDoer defines a public type used by pagegate APIs.
//
// HTTPDoer issues a single HTTP request. *http.Client satisfies it. The
// implementation must observe request-context cancellation promptly so the
// verification timeout can abort an in-flight call.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FailReason defines a public type used by pagegate APIs.
//
// FailReason classifies every non-success outcome of a remote verification
// call into a closed set. Callers collapse all reasons into one generic
// user-facing message; the distinction exists for logging and metrics.
type FailReason string

const (
	// ReasonEndpointNotConfigured is an exported constant or variable used by the gate.
	ReasonEndpointNotConfigured FailReason = "endpoint-not-configured"
	// ReasonNoRuntimeContext is an exported constant or variable used by the gate.
	ReasonNoRuntimeContext FailReason = "no-runtime-context"
	// ReasonNetworkFailure is an exported constant or variable used by the gate.
	ReasonNetworkFailure FailReason = "network-failure"
	// ReasonTimeout is an exported constant or variable used by the gate.
	ReasonTimeout FailReason = "timeout"
	// ReasonBadStatus is an exported constant or variable used by the gate.
	ReasonBadStatus FailReason = "bad-status"
	// ReasonBadResponse is an exported constant or variable used by the gate.
	ReasonBadResponse FailReason = "bad-response"
)

// VerifyResult defines a public type used by pagegate APIs.
//
// VerifyResult is the tagged outcome of a remote verification call. Exactly
// one variant is populated per call: OK true with Valid set, or OK false
// with Reason set. Never both.
type VerifyResult struct {
	OK     bool
	Valid  bool
	Reason FailReason
}

// AuthOutcome defines a public type used by pagegate APIs.
//
// AuthOutcome is the user-facing result of [Gate.Authenticate]. Remote and
// storage failure reasons all collapse into AuthUnavailable; only a direct
// password mismatch surfaces as AuthDenied.
type AuthOutcome int

const (
	// AuthUnavailable is an exported constant or variable used by the gate.
	AuthUnavailable AuthOutcome = iota
	// AuthDenied is an exported constant or variable used by the gate.
	AuthDenied
	// AuthGranted is an exported constant or variable used by the gate.
	AuthGranted
)

// UIHints defines a public type used by pagegate APIs.
//
// UIHints carries the presentation settings from [UIConfig] for a rendering
// layer to read. The gate core never interprets them.
type UIHints struct {
	PasswordHint string
	PageTitle    string
	ColorTheme   string
}

// AuditEvent is a structured gate event emitted by the audit dispatcher.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the gate's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer], one object per line.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
