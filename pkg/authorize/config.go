package authorize

import "github.com/medera/medera_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// CasbinModelPath is the path to the Casbin model configuration file
	CasbinModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool

	// SuperadminBypass allows superadmins to bypass all authorization checks
	SuperadminBypass bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		CasbinModelPath:  "casbin_model.conf",
		EnableAudit:      true,
		SuperadminBypass: true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package
// Config. An unset model path falls back to the default.
func FromCentralConfig(c config.AuthorizationConfig) Config {
	out := Config{
		CasbinModelPath:  c.CasbinModelPath,
		EnableAudit:      c.EnableAudit,
		SuperadminBypass: c.SuperadminBypass,
	}
	if out.CasbinModelPath == "" {
		out.CasbinModelPath = DefaultConfig().CasbinModelPath
	}
	return out
}
