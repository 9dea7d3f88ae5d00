package pagegate

import (
	"sync"

	"github.com/pagegate/pagegate/digest"
)

// storageSaltV1 is mixed into every derivation input. It is compiled in and
// versioned: changing it invalidates all previously persisted authorization
// state, so a new value requires a major version bump.
const storageSaltV1 = "pagegate::v1"

const (
	keyNamespace = "key:"
	valNamespace = "val:"

	keyPrefixLen = 24
	valPrefixLen = 16
)

// derivedPair is the obfuscated key/value written to the persistent store to
// represent an authorized identifier. The key and value come from
// independently namespaced digests so the two are not trivially related.
type derivedPair struct {
	Key   string
	Value string
}

// derivePair derives the storage pair for identifier. Deterministic for a
// fixed identifier and salt. The two digests run concurrently; both must
// complete before the pair is returned.
func derivePair(h digest.Hasher, identifier string) (derivedPair, error) {
	var (
		wg        sync.WaitGroup
		keyDigest string
		valDigest string
		keyErr    error
		valErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		keyDigest, keyErr = h.Sum(keyNamespace + identifier + ":" + storageSaltV1)
	}()
	go func() {
		defer wg.Done()
		valDigest, valErr = h.Sum(valNamespace + identifier + ":" + storageSaltV1)
	}()
	wg.Wait()

	if keyErr != nil {
		return derivedPair{}, keyErr
	}
	if valErr != nil {
		return derivedPair{}, valErr
	}

	return derivedPair{
		Key:   "k_" + digestPrefix(keyDigest, keyPrefixLen),
		Value: "v_" + digestPrefix(valDigest, valPrefixLen),
	}, nil
}

// digestPrefix truncates d to n hex chars. Short digests (the 8-char weak
// fallback) pass through whole.
func digestPrefix(d string, n int) string {
	if len(d) <= n {
		return d
	}
	return d[:n]
}
