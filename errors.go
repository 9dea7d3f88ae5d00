package pagegate

import "errors"

var (
	// ErrBuilderUsed is an exported constant or variable used by the gate.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrIdentifierUnresolvable is an exported constant or variable used by the gate.
	ErrIdentifierUnresolvable = errors.New("no storage identifier: set Gate Password or Storage IdentifierOverride")
)
