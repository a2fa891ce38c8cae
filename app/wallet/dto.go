package wallet

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelu/tote/models"
)

// DepositRequest credits external funds to the caller's wallet.
type DepositRequest struct {
	// Amount in smallest funding units
	Amount uint64 `json:"amount" binding:"required"`
	Memo   string `json:"memo"`
}

// Validate checks the deposit request
func (r *DepositRequest) Validate() error {
	if r.Amount == 0 {
		return models.ErrInvalidAmount
	}
	return nil
}

// TransactionFilters represents filtering options for ledger queries
type TransactionFilters struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// WalletResponse represents a wallet in API responses
type WalletResponse struct {
	AccountID      uuid.UUID       `json:"account_id"`
	Balance        uint64          `json:"balance"`
	BalanceDisplay decimal.Decimal `json:"balance_display"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Type          models.TransactionType      `json:"type"`
	Direction     models.TransactionDirection `json:"direction"`
	Amount        uint64                      `json:"amount"`
	AmountDisplay decimal.Decimal             `json:"amount_display"`
	BalanceAfter  uint64                      `json:"balance_after"`
	ReferenceID   uuid.UUID                   `json:"reference_id"`
	Memo          string                      `json:"memo,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
}

func displayAmount(v uint64, exponent int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -exponent)
}

// ToWalletResponse converts a wallet model to its API representation
func ToWalletResponse(w *models.Wallet, exponent int32) *WalletResponse {
	return &WalletResponse{
		AccountID:      w.AccountID,
		Balance:        w.Balance,
		BalanceDisplay: displayAmount(w.Balance, exponent),
		UpdatedAt:      w.UpdatedAt,
	}
}

// ToTransactionResponse converts a ledger entry to its API representation
func ToTransactionResponse(t *models.Transaction, exponent int32) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Direction:     t.Direction,
		Amount:        t.Amount,
		AmountDisplay: displayAmount(t.Amount, exponent),
		BalanceAfter:  t.BalanceAfter,
		ReferenceID:   t.ReferenceID,
		Memo:          t.Memo,
		CreatedAt:     t.CreatedAt,
	}
}
