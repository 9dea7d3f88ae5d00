package pagegate

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
)

// VerifyRemotely describes the verifyremotely operation and its observable behavior.
//
// VerifyRemotely posts password to the configured verification endpoint and
// returns a tagged [VerifyResult]. Exactly one exit path executes: either
// OK with the endpoint's valid flag, or a failure classified into the
// closed reason set. No retries happen here; callers decide whether to
// retry. The password is held only for the duration of the call and never
// logged, cached, or persisted.
func (g *Gate) VerifyRemotely(ctx context.Context, password string) VerifyResult {
	if g == nil {
		return VerifyResult{Reason: ReasonNoRuntimeContext}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := g.verifier.verify(ctx, password)

	switch {
	case result.OK && result.Valid:
		g.metrics.Inc(MetricVerifySuccess)
		g.emitEvent(ctx, auditEventVerifyAttempt, true, "", nil)
	case result.OK:
		g.metrics.Inc(MetricVerifyInvalid)
		g.emitEvent(ctx, auditEventVerifyAttempt, false, "", nil)
	default:
		g.metrics.Inc(MetricVerifyFailure)
		g.logger.Info("remote verification failed", zap.String("reason", string(result.Reason)))
		g.emitEvent(ctx, auditEventVerifyAttempt, false, string(result.Reason), nil)
	}

	return result
}

// Authenticate describes the authenticate operation and its observable behavior.
//
// Authenticate runs the submission flow a prompt form triggers: when a
// verification endpoint is configured the password is checked remotely,
// otherwise it is compared in constant time against the configured local
// password. On success the gate persists authorization for its resolved
// identifier before returning AuthGranted. Only a direct rejection of the
// password yields AuthDenied; every other failure collapses into
// AuthUnavailable so callers show one generic message.
func (g *Gate) Authenticate(ctx context.Context, password string) AuthOutcome {
	if g == nil {
		return AuthUnavailable
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if g.verifier.configured() {
		result := g.VerifyRemotely(ctx, password)
		if !result.OK {
			g.metrics.Inc(MetricAuthenticateUnavailable)
			return AuthUnavailable
		}
		if !result.Valid {
			g.metrics.Inc(MetricAuthenticateDenied)
			return AuthDenied
		}
	} else {
		expected := g.config.Gate.Password
		if expected == "" {
			g.metrics.Inc(MetricAuthenticateUnavailable)
			return AuthUnavailable
		}
		if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
			g.metrics.Inc(MetricAuthenticateDenied)
			return AuthDenied
		}
	}

	g.MarkAuthorized(ctx, g.resolveIdentifier())
	g.metrics.Inc(MetricAuthenticateGranted)
	return AuthGranted
}
