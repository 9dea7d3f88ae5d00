package pagegate

import (
	"errors"
	"time"
)

// DefaultRequestTimeout bounds a remote verification call when
// VerifyConfig.RequestTimeout is left zero.
const DefaultRequestTimeout = 8 * time.Second

// Config defines a public type used by pagegate APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Gate    GateConfig    `envPrefix:"GATE_"`
	Verify  VerifyConfig  `envPrefix:"VERIFY_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
	Audit   AuditConfig   `envPrefix:"AUDIT_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`
	UI      UIConfig      `envPrefix:"UI_"`
}

/*
====================================
GATE CONFIG
====================================
*/

// GateConfig defines a public type used by pagegate APIs.
//
// GateConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GateConfig struct {
	// Password is the locally configured password, compared in constant time
	// when no remote endpoint is set. Client-side comparison is obfuscation,
	// not protection.
	Password string `env:"PASSWORD"`
}

/*
====================================
VERIFY CONFIG
====================================
*/

// VerifyConfig defines a public type used by pagegate APIs.
//
// VerifyConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type VerifyConfig struct {
	// URL is the full verification endpoint URL. When set it takes
	// precedence over EndpointBase+Path.
	URL string `env:"URL"`
	// EndpointBase is the absolute base the verification Path resolves
	// against.
	EndpointBase string `env:"ENDPOINT_BASE"`
	// Path is the verification path under EndpointBase.
	Path string `env:"ENDPOINT_PATH"`
	// RequestTimeout bounds one verification call, dispatch through body
	// read. Zero means [DefaultRequestTimeout].
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig defines a public type used by pagegate APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	// IdentifierOverride replaces the password as the raw material for
	// storage key derivation. The identifier itself is never stored.
	// Required when only remote verification is configured.
	IdentifierOverride string `env:"IDENTIFIER_OVERRIDE"`
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by pagegate APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool `env:"ENABLED"`
	BufferSize int  `env:"BUFFER_SIZE"`
	DropIfFull bool `env:"DROP_IF_FULL"`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by pagegate APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool `env:"ENABLED"`
}

/*
====================================
UI CONFIG
====================================
*/

// UIConfig defines a public type used by pagegate APIs.
//
// UIConfig carries presentation settings through to the rendering layer via
// [Gate.UIHints]; the gate core never reads them.
type UIConfig struct {
	PasswordHint string `env:"PASSWORD_HINT"`
	PageTitle    string `env:"PAGE_TITLE"`
	ColorTheme   string `env:"COLOR_THEME"`
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig returns the documented defaults for every option; zero-value
// fields left unset by the caller fall back to these at Build.
func DefaultConfig() Config {
	return Config{
		Verify: VerifyConfig{
			RequestTimeout: DefaultRequestTimeout,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c.Verify.RequestTimeout < 0 {
		return errors.New("Verify RequestTimeout must be >= 0")
	}
	if c.Audit.BufferSize < 0 {
		return errors.New("Audit BufferSize must be >= 0")
	}
	if c.remoteConfigured() && c.Gate.Password == "" && c.Storage.IdentifierOverride == "" {
		return ErrIdentifierUnresolvable
	}
	return nil
}

// remoteConfigured reports whether any verification endpoint material is
// present. It does not validate that the material resolves to a usable URL;
// resolution failures surface as ReasonEndpointNotConfigured at call time.
func (c *Config) remoteConfigured() bool {
	return c.Verify.URL != "" || c.Verify.EndpointBase != ""
}

func applyConfigDefaults(cfg *Config) {
	if cfg.Verify.RequestTimeout == 0 {
		cfg.Verify.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Audit.BufferSize == 0 {
		cfg.Audit.BufferSize = 1024
	}
}

// cloneConfig exists to keep Build independent from later mutation of the
// builder's Config. All Config fields are value types today.
func cloneConfig(cfg Config) Config {
	return cfg
}
