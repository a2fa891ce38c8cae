package models

import (
	"math/bits"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet is a custodial balance in smallest funding units. The account may
// be a participant, a market escrow (keyed by the market's UUID), or the
// platform fee sink.
type Wallet struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`
	Balance   uint64    `gorm:"not null;default:0" json:"balance"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:WalletID" json:"-"`
}

// TableName specifies the table name for Wallet model
func (*Wallet) TableName() string {
	return "wallets"
}

// BeforeCreate sets up the model before creation
func (w *Wallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// CanDebit checks if the wallet holds at least the given amount.
func (w *Wallet) CanDebit(amount uint64) bool {
	return w.Balance >= amount
}

// Credit adds funds to the wallet with checked addition.
func (w *Wallet) Credit(amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	balance, carry := bits.Add64(w.Balance, amount, 0)
	if carry != 0 {
		return ErrMathOverflow
	}
	w.Balance = balance
	return nil
}

// Debit removes funds from the wallet.
func (w *Wallet) Debit(amount uint64) error {
	if amount == 0 {
		return ErrInvalidAmount
	}
	if !w.CanDebit(amount) {
		return ErrInsufficientBalance
	}
	w.Balance -= amount
	return nil
}

// Validate performs validation on the wallet model
func (w *Wallet) Validate() error {
	if w.AccountID == uuid.Nil {
		return ErrInvalidAccountID
	}
	return nil
}
