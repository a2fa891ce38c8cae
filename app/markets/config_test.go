package markets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelu/tote/models"
)

func TestConfigValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.FeeAccountID = uuid.New()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_MissingFeeAccount(t *testing.T) {
	cfg := GetDefaultConfig()
	err := cfg.Validate()
	assert.ErrorIs(t, err, models.ErrFeeAccountNotConfigured)
}

func TestConfigValidate_BadParams(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.FeeAccountID = uuid.New()
	cfg.Params.LeadershipWeight = 80

	err := cfg.Validate()
	assert.ErrorIs(t, err, models.ErrInvalidScoreWeights)
}

func TestConfigValidate_DefaultsOddsTTL(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.FeeAccountID = uuid.New()
	cfg.OddsCacheTTL = 0

	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.OddsCacheTTL)
}
