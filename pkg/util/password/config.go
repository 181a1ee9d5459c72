package password

import "github.com/medera/medera_backend/config"

// FromCentralConfig builds Argon2id parameters from the application config.
// Zero values fall back to the secure defaults.
func FromCentralConfig(c config.PasswordConfig) *Params {
	p := DefaultParams()
	if c.MemoryKiB > 0 {
		p.Memory = c.MemoryKiB
	}
	if c.Iterations > 0 {
		p.Iterations = c.Iterations
	}
	if c.Parallelism > 0 {
		p.Parallelism = c.Parallelism
	}
	if c.SaltLength > 0 {
		p.SaltLength = c.SaltLength
	}
	if c.KeyLength > 0 {
		p.KeyLength = c.KeyLength
	}
	return p
}

// SetDefaultParams overrides the package-level parameters used by Hash.
// Call once at startup before any password hashing happens.
func SetDefaultParams(p *Params) {
	if p != nil {
		defaultParams = p
	}
}
