package policy

import (
	"github.com/kelu/tote/models"
)

// Params is the immutable set of economic parameters. It is constructed
// once at process start and passed explicitly to every policy function and
// engine; nothing in this package holds ambient state.
type Params struct {
	// Commission schedule, in basis points of the gross stake.
	BaseCommissionBps    uint64 `env:"BASE_COMMISSION_BPS" env-default:"25"`
	LateCommissionBps    uint64 `env:"LATE_COMMISSION_BPS" env-default:"50"`
	EarlyBetThresholdPct uint64 `env:"EARLY_BET_THRESHOLD_PCT" env-default:"33"`

	// Per-bet bounds, in smallest funding units.
	MinBetAmount      uint64 `env:"MIN_BET_AMOUNT" env-default:"5000000"`
	MinVelocity       uint64 `env:"MIN_VELOCITY" env-default:"100000000"`
	VelocityFactorPct uint64 `env:"VELOCITY_FACTOR_PCT" env-default:"50"`

	// Winner-selection weights; must sum to 100.
	LeadershipWeight uint64 `env:"LEADERSHIP_WEIGHT" env-default:"70"`
	MoneyWeight      uint64 `env:"MONEY_WEIGHT" env-default:"30"`

	// Market construction bounds.
	MinMarketDuration int64 `env:"MIN_MARKET_DURATION" env-default:"3600"`
	MaxMarketDuration int64 `env:"MAX_MARKET_DURATION" env-default:"31536000"`
	MaxQuestionLen    int   `env:"MAX_QUESTION_LEN" env-default:"280"`
	MaxOutcomeLen     int   `env:"MAX_OUTCOME_LEN" env-default:"100"`
	MinOutcomes       int   `env:"MIN_OUTCOMES" env-default:"2"`
	MaxOutcomes       int   `env:"MAX_OUTCOMES" env-default:"10"`

	// Fixed fee debited from the creator when a market is opened.
	CreateMarketFee uint64 `env:"CREATE_MARKET_FEE" env-default:"1000000000"`

	// Decimal exponent between the smallest unit and the display unit.
	UnitExponent int32 `env:"UNIT_EXPONENT" env-default:"9"`
}

// DefaultParams returns the default economic parameters.
func DefaultParams() Params {
	return Params{
		BaseCommissionBps:    25,
		LateCommissionBps:    50,
		EarlyBetThresholdPct: 33,
		MinBetAmount:         5_000_000,
		MinVelocity:          100_000_000,
		VelocityFactorPct:    50,
		LeadershipWeight:     70,
		MoneyWeight:          30,
		MinMarketDuration:    3600,
		MaxMarketDuration:    365 * 24 * 3600,
		MaxQuestionLen:       280,
		MaxOutcomeLen:        100,
		MinOutcomes:          2,
		MaxOutcomes:          10,
		CreateMarketFee:      1_000_000_000,
		UnitExponent:         9,
	}
}

// Validate validates the economic parameters.
func (p *Params) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{p.BaseCommissionBps <= 10_000 && p.LateCommissionBps <= 10_000, models.ErrInvalidCommissionRates},
		{p.BaseCommissionBps <= p.LateCommissionBps, models.ErrInvalidCommissionRates},
		{p.EarlyBetThresholdPct <= 100, models.ErrInvalidCommissionRates},

		{p.MinBetAmount > 0, models.ErrInvalidBetLimits},
		{p.MinVelocity > 0 && p.VelocityFactorPct > 0 && p.VelocityFactorPct <= 100, models.ErrInvalidVelocityParams},

		{p.LeadershipWeight+p.MoneyWeight == 100, models.ErrInvalidScoreWeights},

		{p.MinMarketDuration > 0 && p.MaxMarketDuration > p.MinMarketDuration, models.ErrInvalidMarketDuration},
		{p.MinOutcomes >= 2 && p.MaxOutcomes >= p.MinOutcomes, models.ErrInvalidOutcomeBounds},
		{p.MaxQuestionLen > 0 && p.MaxOutcomeLen > 0, models.ErrInvalidOutcomeBounds},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}
	return nil
}
