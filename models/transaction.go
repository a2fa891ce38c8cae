package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeMarketFee  TransactionType = "market_fee"
	TransactionTypeStake      TransactionType = "stake"
	TransactionTypeCommission TransactionType = "commission"
	TransactionTypePayout     TransactionType = "payout"
)

// TransactionDirection indicates which side of the transfer the entry
// records for its wallet.
type TransactionDirection string

const (
	TransactionDebit  TransactionDirection = "debit"
	TransactionCredit TransactionDirection = "credit"
)

// Transaction is an immutable ledger entry for one wallet movement. Every
// fund transfer writes one entry per touched wallet in the same database
// transaction as the market/position mutation it belongs to.
type Transaction struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WalletID  uuid.UUID            `gorm:"type:uuid;not null;index" json:"wallet_id"`
	Type      TransactionType      `gorm:"type:varchar(20);not null" json:"type"`
	Direction TransactionDirection `gorm:"type:varchar(10);not null" json:"direction"`

	Amount        uint64 `gorm:"not null" json:"amount"`
	BalanceBefore uint64 `gorm:"not null" json:"balance_before"`
	BalanceAfter  uint64 `gorm:"not null" json:"balance_after"`

	// ReferenceID points at the market or position this movement settles.
	ReferenceID uuid.UUID `gorm:"type:uuid;index" json:"reference_id"`
	Memo        string    `gorm:"type:text" json:"memo,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Wallet *Wallet `gorm:"foreignKey:WalletID" json:"-"`
}

// TableName specifies the table name for Transaction model
func (*Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate sets up the model before creation
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the transaction model
func (t *Transaction) Validate() error {
	if t.WalletID == uuid.Nil {
		return ErrInvalidAccountID
	}
	if t.Amount == 0 {
		return ErrInvalidAmount
	}
	switch t.Direction {
	case TransactionDebit, TransactionCredit:
	default:
		return ErrInvalidAmount
	}
	return nil
}
