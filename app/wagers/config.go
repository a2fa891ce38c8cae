package wagers

import (
	"github.com/google/uuid"

	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/models"
)

// Config represents the configuration for the wagers module
type Config struct {
	Params policy.Params

	// FeeAccountID receives bet commissions.
	FeeAccountID uuid.UUID `env:"FEE_ACCOUNT_ID"`
}

// Validate validates the wager configuration
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.FeeAccountID == uuid.Nil {
		return models.ErrFeeAccountNotConfigured
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{Params: policy.DefaultParams()}
}
