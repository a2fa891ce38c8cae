package wagers

import (
	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/models"
)

// BetResult describes the effect of one accepted bet.
type BetResult struct {
	// Commission withheld from the gross stake, and the net contribution
	// that entered the outcome pool.
	Commission uint64
	Net        uint64

	// NewOutcomePool is the backed outcome's pool after the bet.
	NewOutcomePool uint64

	// VelocityLimit is the single-bet cap that applied at bet time. It is
	// also set when the bet is rejected for exceeding it.
	VelocityLimit uint64

	// Odds is the normalized pool snapshot after the bet.
	Odds []uint64

	// LeaderChanged reports whether this bet moved the leadership cache.
	LeaderChanged bool
}

type engine struct {
	params policy.Params
}

// NewEngine creates a betting engine.
func NewEngine(params policy.Params) Engine {
	return &engine{params: params}
}

// ApplyBet validates a bet against the market state at now and, if
// accepted, folds it into the pools and recomputes the leader. The market
// is mutated only when the returned error is nil.
func (e *engine) ApplyBet(market *models.Market, outcomeIndex int, stake uint64, now int64) (*BetResult, error) {
	if !market.IsActive() {
		return nil, models.ErrMarketNotActive
	}
	if market.HasEnded(now) {
		return nil, models.ErrMarketEnded
	}
	if !market.ValidOutcome(outcomeIndex) {
		return nil, models.ErrInvalidOutcomeIndex
	}
	if stake < e.params.MinBetAmount {
		return nil, models.ErrBetTooSmall
	}

	elapsed := policy.ElapsedPercent(market.StartTime, market.EndTime, now)
	rate := e.params.CommissionRate(elapsed)
	commission := policy.CommissionAmount(stake, rate)
	net := stake - commission

	limit := e.params.VelocityLimit(market.TotalPool, now, market.EndTime)
	if stake > limit {
		return &BetResult{VelocityLimit: limit}, models.ErrVelocityLimitExceeded
	}

	if err := market.AddToPool(outcomeIndex, net, commission); err != nil {
		return nil, err
	}
	leaderChanged := market.UpdateLeader(now)

	return &BetResult{
		Commission:     commission,
		Net:            net,
		NewOutcomePool: market.Pools[outcomeIndex],
		VelocityLimit:  limit,
		Odds:           policy.OddsSnapshot(market.Pools, market.TotalPool),
		LeaderChanged:  leaderChanged,
	}, nil
}

// Claim computes the pari-mutuel payout a winning position is entitled to.
// The position is not mutated; callers mark it claimed once the funds move.
func (e *engine) Claim(market *models.Market, position *models.Position) (uint64, error) {
	if !market.IsResolved() {
		return 0, models.ErrMarketNotResolved
	}
	if position.Claimed {
		return 0, models.ErrAlreadyClaimed
	}
	if position.OutcomeIndex != *market.Winner {
		return 0, models.ErrNotWinner
	}

	winningPool := market.Pools[*market.Winner]
	return policy.Payout(position.Amount, market.TotalPool, winningPool)
}
