package markets

import (
	"time"

	"github.com/google/uuid"

	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/models"
)

// Config represents the configuration for the markets module
type Config struct {
	Params policy.Params

	// FeeAccountID receives market creation fees and bet commissions.
	FeeAccountID uuid.UUID `env:"FEE_ACCOUNT_ID"`

	// OddsCacheTTL bounds how stale a cached odds snapshot may be.
	OddsCacheTTL time.Duration `env:"ODDS_CACHE_TTL" env-default:"2s"`
}

// Validate validates the market configuration
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.FeeAccountID == uuid.Nil {
		return models.ErrFeeAccountNotConfigured
	}
	if c.OddsCacheTTL <= 0 {
		c.OddsCacheTTL = 2 * time.Second
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Params:       policy.DefaultParams(),
		OddsCacheTTL: 2 * time.Second,
	}
}
