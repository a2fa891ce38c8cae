package markets

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/internal/validator"
	"github.com/kelu/tote/models"
)

// CreateMarketRequest represents the request to create a market
// @Description Request payload for opening a new pari-mutuel betting market
type CreateMarketRequest struct {
	// Question the market settles, plain text
	Question string `json:"question" binding:"required"`

	// Outcomes in display order; an outcome's index is its permanent identity
	Outcomes []string `json:"outcomes" binding:"required"`

	// EndTime when betting closes
	EndTime time.Time `json:"end_time" binding:"required"`
}

// Validate checks the request against the market construction bounds.
// Callers sanitize the text fields first.
func (r *CreateMarketRequest) Validate(params policy.Params, now int64) error {
	if !validator.NotBlank(r.Question) {
		return models.ErrInvalidQuestion
	}
	if !validator.MaxRunes(r.Question, params.MaxQuestionLen) {
		return models.ErrQuestionTooLong
	}

	if len(r.Outcomes) < params.MinOutcomes || len(r.Outcomes) > params.MaxOutcomes {
		return models.ErrInvalidOutcomes
	}
	for _, label := range r.Outcomes {
		if !validator.NotBlank(label) {
			return models.ErrBlankOutcome
		}
		if !validator.MaxRunes(label, params.MaxOutcomeLen) {
			return models.ErrOutcomeTooLong
		}
	}
	if !validator.NoDuplicates(r.Outcomes) {
		return models.ErrDuplicateOutcome
	}

	end := r.EndTime.Unix()
	if end <= now {
		return models.ErrEndTimeInPast
	}
	duration := end - now
	if duration < params.MinMarketDuration {
		return models.ErrMarketTooShort
	}
	if duration > params.MaxMarketDuration {
		return models.ErrMarketTooLong
	}
	return nil
}

// PauseRequest toggles the administrative pause flag
type PauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// MarketFilters represents listing filters and pagination
type MarketFilters struct {
	Phase     string     `form:"phase"`
	CreatorID *uuid.UUID `form:"creator_id"`
	SortBy    string     `form:"sort_by"`
	SortOrder string     `form:"sort_order"`
	Page      int        `form:"page"`
	PerPage   int        `form:"per_page"`
}

// MarketResponse represents a market in API responses
type MarketResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Sequence  uint64    `json:"sequence"`

	Question string   `json:"question"`
	Outcomes []string `json:"outcomes"`

	StartTime      int64  `json:"start_time"`
	EndTime        int64  `json:"end_time"`
	ResolutionTime *int64 `json:"resolution_time,omitempty"`

	Pools            []uint64        `json:"pools"`
	TotalPool        uint64          `json:"total_pool"`
	TotalPoolDisplay decimal.Decimal `json:"total_pool_display"`
	TotalFees        uint64          `json:"total_fees"`

	LeadingOutcome *int16 `json:"leading_outcome,omitempty"`
	LeadingSince   *int64 `json:"leading_since,omitempty"`

	Phase  string `json:"phase"`
	Winner *int16 `json:"winner,omitempty"`
	Paused bool   `json:"paused"`

	CreatedAt time.Time `json:"created_at"`
}

// MarketListResponse represents a paginated list of markets
type MarketListResponse struct {
	Markets []MarketResponse `json:"markets"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// OddsResponse represents the normalized pool shares of a market
type OddsResponse struct {
	MarketID  uuid.UUID `json:"market_id"`
	Odds      []uint64  `json:"odds"`
	Pools     []uint64  `json:"pools"`
	TotalPool uint64    `json:"total_pool"`
}

// DisplayAmount converts a smallest-unit amount to display units.
func DisplayAmount(v uint64, exponent int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -exponent)
}

// ToMarketResponse converts a market model to its response form.
func ToMarketResponse(m *models.Market, exponent int32) MarketResponse {
	return MarketResponse{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Sequence:         m.Sequence,
		Question:         m.Question,
		Outcomes:         m.Outcomes,
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		ResolutionTime:   m.ResolutionTime,
		Pools:            m.Pools,
		TotalPool:        m.TotalPool,
		TotalPoolDisplay: DisplayAmount(m.TotalPool, exponent),
		TotalFees:        m.TotalFees,
		LeadingOutcome:   m.LeadingOutcome,
		LeadingSince:     m.LeadingSince,
		Phase:            string(m.Phase),
		Winner:           m.Winner,
		Paused:           m.Paused,
		CreatedAt:        m.CreatedAt,
	}
}
