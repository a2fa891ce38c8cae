package markets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/models"
)

func int16Ptr(v int16) *int16 { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestScoreEngine_NoBets(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	market := &models.Market{
		StartTime: 0,
		EndTime:   3600,
		Pools:     models.PoolList{0, 0},
		TotalPool: 0,
	}

	_, err := engine.Winner(market, 3600)
	assert.ErrorIs(t, err, models.ErrNoBetsPlaced)
}

func TestScoreEngine_LeadershipBeatsMoney(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	// Outcome 0 held the lead for 1600 of 3600 seconds but attracted less
	// money than outcome 1. Leadership: floor(1600*100/3600)*70 = 3080.
	// Money: 0 gets floor(300*3000/1000) = 900, 1 gets 2100.
	market := &models.Market{
		StartTime:      0,
		EndTime:        3600,
		Pools:          models.PoolList{300, 700},
		TotalPool:      1000,
		LeadingOutcome: int16Ptr(0),
		LeadingSince:   int64Ptr(2000),
	}

	winner, err := engine.Winner(market, 3600)
	require.NoError(t, err)
	assert.Equal(t, int16(0), winner, "3980 vs 2100: lead time outweighs pool size")
}

func TestScoreEngine_MoneyDecidesWithoutLeadershipEdge(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	// The cached leader is also the bigger pool; it wins on both components.
	market := &models.Market{
		StartTime:      0,
		EndTime:        3600,
		Pools:          models.PoolList{200, 800},
		TotalPool:      1000,
		LeadingOutcome: int16Ptr(1),
		LeadingSince:   int64Ptr(100),
	}

	winner, err := engine.Winner(market, 3600)
	require.NoError(t, err)
	assert.Equal(t, int16(1), winner)
}

func TestScoreEngine_TieKeepsLowestIndex(t *testing.T) {
	params := policy.DefaultParams()
	engine := NewScoreEngine(params)

	// Equal pools and no leadership cache: identical scores, index 0 wins.
	market := &models.Market{
		StartTime: 0,
		EndTime:   3600,
		Pools:     models.PoolList{500, 500},
		TotalPool: 1000,
	}

	winner, err := engine.Winner(market, 3600)
	require.NoError(t, err)
	assert.Equal(t, int16(0), winner)
}

func TestScoreEngine_EmptyPoolsAreSkipped(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	market := &models.Market{
		StartTime:      0,
		EndTime:        3600,
		Pools:          models.PoolList{0, 100, 0},
		TotalPool:      100,
		LeadingOutcome: int16Ptr(1),
		LeadingSince:   int64Ptr(500),
	}

	winner, err := engine.Winner(market, 3600)
	require.NoError(t, err)
	assert.Equal(t, int16(1), winner)
}

func TestScoreEngine_OnlyCachedLeaderGetsLeadershipCredit(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	// Outcome 0 led for most of the market but lost the lead near the end.
	// Only the cached leader at resolution time earns the leadership
	// component, so outcome 0 scores on money alone.
	market := &models.Market{
		StartTime:      0,
		EndTime:        3600,
		Pools:          models.PoolList{490, 510},
		TotalPool:      1000,
		LeadingOutcome: int16Ptr(1),
		LeadingSince:   int64Ptr(3500),
	}

	winner, err := engine.Winner(market, 3600)
	require.NoError(t, err)
	// 1: money 1530 + leadership floor(100*100/3600)*70 = 2*70 = 140 → 1670
	// 0: money 1470
	assert.Equal(t, int16(1), winner)
}

func TestScoreEngine_LeadershipDurationFromStartWhenSinceMissing(t *testing.T) {
	engine := NewScoreEngine(policy.DefaultParams())

	market := &models.Market{
		StartTime:      1000,
		EndTime:        4600,
		Pools:          models.PoolList{100, 900},
		TotalPool:      1000,
		LeadingOutcome: int16Ptr(0),
	}

	winner, err := engine.Winner(market, 4600)
	require.NoError(t, err)
	// 0: leadership floor(3600*100/3600)*70 = 7000, money 300 → 7300
	// 1: money 2700
	assert.Equal(t, int16(0), winner)
}
