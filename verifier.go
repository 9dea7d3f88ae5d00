package pagegate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
)

type verifyRequest struct {
	Password string `json:"password"`
}

// verifyResponse models the endpoint contract. Valid is a pointer so a body
// that parses but lacks a boolean "valid" field is distinguishable from
// {"valid": false}.
type verifyResponse struct {
	Valid *bool `json:"valid"`
}

// verifier issues one remote verification call per invocation: POST a JSON
// password to the resolved endpoint, bounded by a timeout, with every
// failure mode classified into the closed FailReason set. No retries.
type verifier struct {
	client HTTPDoer
	config VerifyConfig
}

func newVerifier(client HTTPDoer, cfg VerifyConfig) *verifier {
	return &verifier{
		client: client,
		config: cfg,
	}
}

// configured reports whether any endpoint material is present at all. Used
// by Authenticate to choose between the remote flow and the local compare.
func (v *verifier) configured() bool {
	return v.config.URL != "" || v.config.EndpointBase != ""
}

// resolveURL computes the absolute verification URL. A full URL takes
// precedence over base+path. Returns false for missing or malformed
// material; no network call happens in that case.
func (v *verifier) resolveURL() (string, bool) {
	if v.config.URL != "" {
		u, err := url.Parse(v.config.URL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return "", false
		}
		return u.String(), true
	}

	if v.config.EndpointBase == "" || v.config.Path == "" {
		return "", false
	}
	base, err := url.Parse(v.config.EndpointBase)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return "", false
	}
	ref, err := url.Parse(v.config.Path)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

func (v *verifier) verify(ctx context.Context, password string) VerifyResult {
	if v.client == nil {
		return VerifyResult{Reason: ReasonNoRuntimeContext}
	}

	target, ok := v.resolveURL()
	if !ok {
		return VerifyResult{Reason: ReasonEndpointNotConfigured}
	}

	timeout := v.config.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(verifyRequest{Password: password})
	if err != nil {
		return VerifyResult{Reason: ReasonBadResponse}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return VerifyResult{Reason: ReasonEndpointNotConfigured}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		if isCanceled(ctx, err) {
			return VerifyResult{Reason: ReasonTimeout}
		}
		return VerifyResult{Reason: ReasonNetworkFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// body intentionally unread
		return VerifyResult{Reason: ReasonBadStatus}
	}

	// The whole body must be exactly one JSON value; trailing bytes after
	// the value are as malformed as a truncated one.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isCanceled(ctx, err) {
			return VerifyResult{Reason: ReasonTimeout}
		}
		return VerifyResult{Reason: ReasonBadResponse}
	}
	var parsed verifyResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return VerifyResult{Reason: ReasonBadResponse}
	}
	if parsed.Valid == nil {
		return VerifyResult{Reason: ReasonBadResponse}
	}

	return VerifyResult{OK: true, Valid: *parsed.Valid}
}

// isCanceled reports whether err, observed at the catch stage, traces back
// to the timer-driven cancellation rather than a transport fault.
func isCanceled(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return ctx.Err() != nil
}
