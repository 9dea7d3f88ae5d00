// Package pagegate provides a client-side visual gate that hides content
// behind a password prompt and persists authorization in a key-value store so
// the user is not re-prompted on subsequent visits.
//
// pagegate is NOT a security boundary. The password can optionally be checked
// against a remote endpoint, but the gate's own comparison and storage
// behavior is obfuscation, not protection: it writes a hash-derived key/value
// pair into the configured store and treats its presence as "authorized".
// Server-side enforcement, if any, lives entirely behind the remote
// verification endpoint.
//
// # Architecture boundaries
//
// pagegate is the public surface. It exposes [Gate], [Builder], [Config], and
// value types (VerifyResult, AuthOutcome, MetricsSnapshot, UIHints). Hashing
// primitives live in the digest subpackage, persistent store implementations
// in the store subpackage, and internal coordination (the authorization
// cache and audit dispatch) lives under internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Log, cache, or persist a raw password anywhere. Passwords are held only
//     for the duration of a comparison or verification call.
//   - Propagate storage or hashing faults to callers. IsAuthorized fails
//     closed, MarkAuthorized fails silently.
//   - Retry remote verification. Callers decide whether to retry.
//
// # Concurrency contract
//
// Gate methods are safe to call from multiple goroutines after initialization
// through [Builder.Build]. A MarkAuthorized that completes before a later
// IsAuthorized for the same identifier is observed by that read within one
// process lifetime; the in-process authorization cache takes priority over
// store lookups.
package pagegate
