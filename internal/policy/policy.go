// Package policy holds the pure numeric policies of the betting market:
// the time-dependent commission schedule, the anti-manipulation velocity
// limit on single bets, the winner-selection scores and the pari-mutuel
// payout formula. Everything operates on integers in the smallest funding
// unit; every multiply-then-divide step goes through a 128-bit
// intermediate so pool-sized values cannot overflow before the final
// narrowing division.
package policy

import (
	"math/bits"

	"github.com/kelu/tote/models"
)

const bpsDenominator = 10_000

// ElapsedPercent returns the integer percentage of the betting window that
// has elapsed at now: floor((now-start)*100 / (end-start)).
func ElapsedPercent(start, end, now int64) uint64 {
	duration := end - start
	if duration <= 0 {
		return 100
	}
	elapsed := now - start
	if elapsed <= 0 {
		return 0
	}
	return mulDiv(uint64(elapsed), 100, uint64(duration))
}

// CommissionRate returns the fee rate in basis points for a bet placed
// when elapsedPct of the market's duration has passed. Early bets pay the
// base rate; bets after the threshold pay the late rate, taxing
// last-moment high-conviction bets more.
func (p Params) CommissionRate(elapsedPct uint64) uint64 {
	if elapsedPct <= p.EarlyBetThresholdPct {
		return p.BaseCommissionBps
	}
	return p.LateCommissionBps
}

// CommissionAmount returns floor(stake * rateBps / 10000). The net pool
// contribution is stake minus this amount.
func CommissionAmount(stake, rateBps uint64) uint64 {
	return mulDiv(stake, rateBps, bpsDenominator)
}

// VelocityLimit returns the maximum single gross bet allowed at now, given
// the total pool before the bet. An empty pool gets the fixed minimum;
// otherwise the cap is half the pool divided by the integer square root of
// the hours remaining, floored at the minimum.
//
// Note the divisor shrinks as the deadline approaches, so for a fixed pool
// the cap grows near the end. The cap is still anchored to pool depth at
// bet time, which is what bounds how far one bet can move the market.
func (p Params) VelocityLimit(totalPool uint64, now, endTime int64) uint64 {
	if totalPool == 0 {
		return p.MinVelocity
	}

	remaining := endTime - now
	hoursRemaining := int64(1)
	if remaining > 3600 {
		hoursRemaining = remaining / 3600
	}

	root := isqrt(uint64(hoursRemaining))
	if root == 0 {
		root = 1
	}

	dynamic := mulDiv(totalPool, p.VelocityFactorPct, 100) / root
	if dynamic < p.MinVelocity {
		return p.MinVelocity
	}
	return dynamic
}

// LeadershipScore scores an outcome for how long it held the lead:
// floor(leadingDuration*100/totalDuration) * weight, on a 0-7000 scale
// with the default 70% weight.
func (p Params) LeadershipScore(leadingDuration, totalDuration int64) uint64 {
	if totalDuration <= 0 || leadingDuration <= 0 {
		return 0
	}
	pct := mulDiv(uint64(leadingDuration), 100, uint64(totalDuration))
	return pct * p.LeadershipWeight
}

// MoneyScore scores an outcome for its share of the staked money:
// floor(outcomePool*100*weight/totalPool), on a 0-3000 scale with the
// default 30% weight.
func (p Params) MoneyScore(outcomePool, totalPool uint64) uint64 {
	if totalPool == 0 {
		return 0
	}
	return mulDiv(outcomePool, 100*p.MoneyWeight, totalPool)
}

// OddsSnapshot returns the normalized share of each pool as an integer
// percentage: pool*100/total for every outcome, all zeros when the total
// pool is zero.
func OddsSnapshot(pools models.PoolList, totalPool uint64) []uint64 {
	odds := make([]uint64, len(pools))
	if totalPool == 0 {
		return odds
	}
	for i, pool := range pools {
		odds[i] = mulDiv(pool, 100, totalPool)
	}
	return odds
}

// Payout computes the pari-mutuel entitlement
// floor(amount * totalPool / winningPool): the whole pool is redistributed
// to winners in proportion to each winner's gross stake share of the net
// winning pool. Returns ErrMathOverflow if the result does not fit in a
// uint64 and ErrNothingToClaim if the winning pool is empty.
func Payout(amount, totalPool, winningPool uint64) (uint64, error) {
	if winningPool == 0 {
		return 0, models.ErrNothingToClaim
	}

	hi, lo := bits.Mul64(amount, totalPool)
	if hi >= winningPool {
		return 0, models.ErrMathOverflow
	}
	quo, _ := bits.Div64(hi, lo, winningPool)
	return quo, nil
}

// CheckedAdd adds two pool-sized values, rejecting wraparound.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, models.ErrMathOverflow
	}
	return sum, nil
}

// mulDiv computes floor(a*b/den) through a 128-bit intermediate. The
// callers in this package guarantee the quotient fits in a uint64
// (b <= den, or a <= den with b bounded by a small constant).
func mulDiv(a, b, den uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		// Quotient would overflow; saturate rather than panic in Div64.
		return ^uint64(0)
	}
	quo, _ := bits.Div64(hi, lo, den)
	return quo
}

// isqrt returns the integer square root of n.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
