package pagegate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type countingTransport struct {
	calls atomic.Int64
}

func (t *countingTransport) Do(*http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return nil, http.ErrHandlerTimeout
}

func remoteConfig(endpointURL string) Config {
	cfg := DefaultConfig()
	cfg.Verify.URL = endpointURL
	cfg.Storage.IdentifierOverride = "site-1"
	return cfg
}

func newVerifyGate(t *testing.T, cfg Config, client HTTPDoer) *Gate {
	t.Helper()

	gate, err := New().
		WithConfig(cfg).
		WithStore(newCountingStore()).
		WithHTTPClient(client).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(gate.Close)

	return gate
}

func TestVerifyRemotelyHappyPath(t *testing.T) {
	var gotMethod, gotContentType string
	var gotPassword string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		var body struct {
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotPassword = body.Password

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())

	result := gate.VerifyRemotely(context.Background(), "secret")
	if !result.OK || !result.Valid {
		t.Fatalf("expected ok/valid, got %+v", result)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", gotContentType)
	}
	if gotPassword != "secret" {
		t.Fatalf("expected password in body, got %q", gotPassword)
	}
}

func TestVerifyRemotelyInvalidPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())

	result := gate.VerifyRemotely(context.Background(), "wrong")
	if !result.OK || result.Valid {
		t.Fatalf("expected ok/invalid, got %+v", result)
	}
	if result.Reason != "" {
		t.Fatalf("expected empty reason on ok result, got %s", result.Reason)
	}
}

func TestVerifyRemotelyBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())

	result := gate.VerifyRemotely(context.Background(), "secret")
	if result.OK || result.Reason != ReasonBadStatus {
		t.Fatalf("expected bad-status, got %+v", result)
	}
}

func TestVerifyRemotelyBadShape(t *testing.T) {
	bodies := []string{
		`{"ok":true}`,
		`{"valid":"yes"}`,
		`null`,
		`not json at all`,
		`42`,
		`{"valid":true}garbage`,
		`{"valid":true}{"valid":false}`,
	}

	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())
		result := gate.VerifyRemotely(context.Background(), "secret")
		srv.Close()

		if result.OK || result.Reason != ReasonBadResponse {
			t.Fatalf("body %q: expected bad-response, got %+v", body, result)
		}
	}
}

func TestVerifyRemotelyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client abort, then hold
		// the response until the request context is canceled.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.Verify.RequestTimeout = 50 * time.Millisecond
	gate := newVerifyGate(t, cfg, srv.Client())

	start := time.Now()
	result := gate.VerifyRemotely(context.Background(), "secret")
	elapsed := time.Since(start)

	if result.OK || result.Reason != ReasonTimeout {
		t.Fatalf("expected timeout, got %+v", result)
	}
	if elapsed > time.Second {
		t.Fatalf("expected prompt cancellation, took %v", elapsed)
	}
}

func TestVerifyRemotelyNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	endpoint := srv.URL
	srv.Close()

	gate := newVerifyGate(t, remoteConfig(endpoint), &http.Client{})

	result := gate.VerifyRemotely(context.Background(), "secret")
	if result.OK || result.Reason != ReasonNetworkFailure {
		t.Fatalf("expected network-failure, got %+v", result)
	}
}

func TestVerifyRemotelyEndpointNotConfigured(t *testing.T) {
	transport := &countingTransport{}

	cfg := DefaultConfig()
	cfg.Gate.Password = "secret"
	gate := newVerifyGate(t, cfg, transport)

	result := gate.VerifyRemotely(context.Background(), "secret")
	if result.OK || result.Reason != ReasonEndpointNotConfigured {
		t.Fatalf("expected endpoint-not-configured, got %+v", result)
	}
	if transport.calls.Load() != 0 {
		t.Fatal("expected no network call for unconfigured endpoint")
	}
}

func TestVerifyRemotelyMalformedURL(t *testing.T) {
	transport := &countingTransport{}

	cfg := remoteConfig("://not-a-url")
	gate := newVerifyGate(t, cfg, transport)

	result := gate.VerifyRemotely(context.Background(), "secret")
	if result.OK || result.Reason != ReasonEndpointNotConfigured {
		t.Fatalf("expected endpoint-not-configured, got %+v", result)
	}
	if transport.calls.Load() != 0 {
		t.Fatal("expected no network call for malformed URL")
	}
}

func TestVerifyRemotelyBasePlusPathResolution(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Verify.EndpointBase = srv.URL
	cfg.Verify.Path = "/api/verify"
	cfg.Storage.IdentifierOverride = "site-1"
	gate := newVerifyGate(t, cfg, srv.Client())

	result := gate.VerifyRemotely(context.Background(), "secret")
	if !result.OK || !result.Valid {
		t.Fatalf("expected ok/valid, got %+v", result)
	}
	if gotPath != "/api/verify" {
		t.Fatalf("expected /api/verify, got %s", gotPath)
	}
}

func TestVerifyRemotelyNoRuntimeContext(t *testing.T) {
	gate := newVerifyGate(t, remoteConfig("http://example.invalid/verify"), nil)

	result := gate.VerifyRemotely(context.Background(), "secret")
	if result.OK || result.Reason != ReasonNoRuntimeContext {
		t.Fatalf("expected no-runtime-context, got %+v", result)
	}
}

func TestAuthenticateLocalPassword(t *testing.T) {
	st := newCountingStore()
	gate := newTestGate(t, localPasswordConfig("secret"), st)
	ctx := context.Background()

	if outcome := gate.Authenticate(ctx, "wrong"); outcome != AuthDenied {
		t.Fatalf("expected AuthDenied, got %v", outcome)
	}
	if gate.Authorized(ctx) {
		t.Fatal("expected no persisted authorization after denial")
	}

	if outcome := gate.Authenticate(ctx, "secret"); outcome != AuthGranted {
		t.Fatalf("expected AuthGranted, got %v", outcome)
	}
	if !gate.Authorized(ctx) {
		t.Fatal("expected persisted authorization after grant")
	}
}

func TestAuthenticateRemoteGrantPersists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	st := newCountingStore()
	gate, err := New().
		WithConfig(remoteConfig(srv.URL)).
		WithStore(st).
		WithHTTPClient(srv.Client()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer gate.Close()

	ctx := context.Background()
	if outcome := gate.Authenticate(ctx, "secret"); outcome != AuthGranted {
		t.Fatalf("expected AuthGranted, got %v", outcome)
	}
	if !gate.IsAuthorized(ctx, "site-1") {
		t.Fatal("expected authorization persisted for identifier override")
	}
}

func TestAuthenticateRemoteFailureCollapsesToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())
	ctx := context.Background()

	if outcome := gate.Authenticate(ctx, "secret"); outcome != AuthUnavailable {
		t.Fatalf("expected AuthUnavailable, got %v", outcome)
	}
	if gate.IsAuthorized(ctx, "site-1") {
		t.Fatal("expected no persisted authorization on failure")
	}
}

func TestAuthenticateRemoteRejectionIsDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	gate := newVerifyGate(t, remoteConfig(srv.URL), srv.Client())

	if outcome := gate.Authenticate(context.Background(), "wrong"); outcome != AuthDenied {
		t.Fatalf("expected AuthDenied, got %v", outcome)
	}
}

func TestAuthenticateNothingConfigured(t *testing.T) {
	gate := newTestGate(t, DefaultConfig(), newCountingStore())

	if outcome := gate.Authenticate(context.Background(), "anything"); outcome != AuthUnavailable {
		t.Fatalf("expected AuthUnavailable, got %v", outcome)
	}
}
