package models

import (
	"math/bits"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position records one participant's cumulative stake in one market. The
// bound outcome is fixed at the first bet; the amount is the gross stake
// (before commission), which is also what the payout formula uses.
type Position struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_positions_account_market" json:"account_id"`
	MarketID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_positions_account_market" json:"market_id"`

	OutcomeIndex int16  `gorm:"type:smallint;not null" json:"outcome_index"`
	Amount       uint64 `gorm:"not null" json:"amount"`
	PlacedAt     int64  `gorm:"not null" json:"placed_at"`
	Claimed      bool   `gorm:"not null;default:false" json:"claimed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Market *Market `gorm:"foreignKey:MarketID" json:"market,omitempty"`
}

// TableName specifies the table name for Position model
func (*Position) TableName() string {
	return "positions"
}

// BeforeCreate sets up the model before creation
func (p *Position) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Extend adds a further gross stake on the already-bound outcome. A
// participant cannot split across outcomes in the same market.
func (p *Position) Extend(outcomeIndex int16, stake uint64) error {
	if p.OutcomeIndex != outcomeIndex {
		return ErrOutcomeMismatch
	}

	amount, carry := bits.Add64(p.Amount, stake, 0)
	if carry != 0 {
		return ErrMathOverflow
	}
	p.Amount = amount
	return nil
}

// MarkClaimed flags the position as paid out. After this the record is
// finished and may be discarded by storage.
func (p *Position) MarkClaimed() error {
	if p.Claimed {
		return ErrAlreadyClaimed
	}
	p.Claimed = true
	return nil
}

// Validate performs validation on the position model
func (p *Position) Validate() error {
	if p.AccountID == uuid.Nil {
		return ErrInvalidAccountID
	}
	if p.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if p.OutcomeIndex < 0 {
		return ErrInvalidOutcomeIndex
	}
	if p.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
