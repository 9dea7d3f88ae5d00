// Package digest provides the string-hashing primitives used to derive
// obfuscated storage keys and values.
//
// Two implementations are available: [SHA256], the primary cryptographic
// path, and [Rolling], a weak deterministic fallback for runtimes without a
// usable secure hash primitive. Rolling is NOT cryptographically secure and
// is never selected automatically; callers opt into it through explicit
// injection.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher computes a lowercase hexadecimal digest of an input string.
//
// Implementations must be deterministic: the same input yields a
// byte-identical digest across calls and process restarts. The digest length
// is fixed by the algorithm. Hashers hold no state and perform no caching;
// callers cache at a higher level.
type Hasher interface {
	Sum(input string) (string, error)
}

// SHA256 is the primary [Hasher]. It produces the full 64-character hex
// encoding of a SHA-256 digest.
type SHA256 struct{}

// NewSHA256 creates the primary SHA-256 backed [Hasher].
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// Sum returns the lowercase hex SHA-256 digest of input. It never fails; the
// error return satisfies [Hasher].
func (*SHA256) Sum(input string) (string, error) {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}

// Rolling is the weak fallback [Hasher]. It accumulates
//
//	acc = acc*31 + codepoint (mod 2^32)
//
// over the input's code points and hex-encodes the final 32-bit accumulator,
// zero-padded to 8 characters.
//
// Rolling is NOT cryptographically secure. It exists only to keep key
// derivation functional in environments without a secure hash primitive, and
// its output must stay stable across releases because persisted storage keys
// depend on it.
type Rolling struct{}

// NewRolling creates the weak non-cryptographic fallback [Hasher].
func NewRolling() *Rolling {
	return &Rolling{}
}

// Sum returns the 8-character hex rolling hash of input. It never fails; the
// error return satisfies [Hasher].
func (*Rolling) Sum(input string) (string, error) {
	var acc uint32
	for _, r := range input {
		acc = acc*31 + uint32(r)
	}
	return fmt.Sprintf("%08x", acc), nil
}
