package pagegate

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	auditEventAuthorizeCheck = "authorize_check"
	auditEventAuthorizeGrant = "authorize_grant"
	auditEventVerifyAttempt  = "verify_attempt"
	auditEventStorageError   = "storage_error"
)

// emitEvent builds and dispatches one gate event. Events carry a failure
// reason and an opaque error string at most; never an identifier, a derived
// pair, or a password.
func (g *Gate) emitEvent(ctx context.Context, eventType string, success bool, reason string, err error) {
	if g == nil || g.audit == nil {
		return
	}

	event := AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Reason:    reason,
		Success:   success,
	}
	if err != nil {
		event.Error = err.Error()
	}

	g.audit.Emit(ctx, event)
}
