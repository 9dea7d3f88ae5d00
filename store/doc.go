// Package store provides persistent key-value backends for the gate's
// derived authorization pair.
//
// All implementations satisfy the root Store interface: Get reports a
// missing key with ok=false and a nil error, Set overwrites unconditionally,
// and nothing ever deletes, enumerates, or expires keys. [Memory] is
// ephemeral, [File] persists a JSON document per browsing-context analog,
// and [Redis] namespaces entries under a configurable prefix.
package store
