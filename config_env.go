package pagegate

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// FromEnv describes the fromenv operation and its observable behavior.
//
// FromEnv loads a [Config] from PAGEGATE_-prefixed environment variables,
// starting from [DefaultConfig] so unset variables keep the documented
// defaults. Variable names follow the config tree, e.g.
// PAGEGATE_VERIFY_URL, PAGEGATE_VERIFY_REQUEST_TIMEOUT (a Go duration such
// as "8s"), PAGEGATE_STORAGE_IDENTIFIER_OVERRIDE, PAGEGATE_AUDIT_ENABLED.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "PAGEGATE_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
