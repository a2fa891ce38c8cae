package wallet

import "github.com/kelu/tote/internal/policy"

// Config holds wallet module configuration
type Config struct {
	Params policy.Params
}

// Validate checks the configuration
func (c *Config) Validate() error {
	return c.Params.Validate()
}

// GetDefaultConfig returns the default wallet configuration
func GetDefaultConfig() *Config {
	return &Config{
		Params: policy.DefaultParams(),
	}
}
