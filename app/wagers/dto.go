package wagers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelu/tote/app/markets"
	"github.com/kelu/tote/models"
)

// PlaceBetRequest represents the request to place a bet
// @Description Request payload for staking on one market outcome
type PlaceBetRequest struct {
	// OutcomeIndex of the backed outcome
	OutcomeIndex *int `json:"outcome_index" binding:"required"`

	// Amount is the gross stake in smallest funding units
	Amount uint64 `json:"amount" binding:"required"`
}

// BetResponse represents an accepted bet
type BetResponse struct {
	MarketID     uuid.UUID `json:"market_id"`
	OutcomeIndex int       `json:"outcome_index"`

	Amount        uint64          `json:"amount"`
	AmountDisplay decimal.Decimal `json:"amount_display"`
	Commission    uint64          `json:"commission"`
	Net           uint64          `json:"net"`

	OutcomePool   uint64   `json:"outcome_pool"`
	TotalPool     uint64   `json:"total_pool"`
	Odds          []uint64 `json:"odds"`
	LeaderChanged bool     `json:"leader_changed"`

	PositionAmount uint64 `json:"position_amount"`
}

// ClaimResponse represents a settled claim
type ClaimResponse struct {
	MarketID      uuid.UUID       `json:"market_id"`
	OutcomeIndex  int16           `json:"outcome_index"`
	Stake         uint64          `json:"stake"`
	Payout        uint64          `json:"payout"`
	PayoutDisplay decimal.Decimal `json:"payout_display"`
}

// PositionResponse represents a participant's stake in one market
type PositionResponse struct {
	MarketID     uuid.UUID `json:"market_id"`
	OutcomeIndex int16     `json:"outcome_index"`

	Amount        uint64          `json:"amount"`
	AmountDisplay decimal.Decimal `json:"amount_display"`
	PlacedAt      int64           `json:"placed_at"`
	Claimed       bool            `json:"claimed"`
}

// ToPositionResponse converts a position model to its response form.
func ToPositionResponse(p *models.Position, exponent int32) PositionResponse {
	return PositionResponse{
		MarketID:      p.MarketID,
		OutcomeIndex:  p.OutcomeIndex,
		Amount:        p.Amount,
		AmountDisplay: markets.DisplayAmount(p.Amount, exponent),
		PlacedAt:      p.PlacedAt,
		Claimed:       p.Claimed,
	}
}
