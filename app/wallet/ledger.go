package wallet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kelu/tote/models"
)

// LedgerStore is the minimal wallet access a fund movement needs. The
// markets and wagers repositories implement it over their own transaction
// handles, so a transfer always commits or rolls back with the market
// mutation that caused it.
type LedgerStore interface {
	GetWalletForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
}

// Transfer moves amount from one account to another and writes a debit and
// a credit ledger entry. The destination wallet is created on first use;
// a missing source wallet reads as insufficient balance.
func Transfer(ctx context.Context,
	store LedgerStore,
	from, to uuid.UUID,
	amount uint64,
	txType models.TransactionType,
	referenceID uuid.UUID,
	memo string) error {
	if amount == 0 {
		return models.ErrInvalidAmount
	}

	src, err := store.GetWalletForUpdate(ctx, from)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return models.ErrInsufficientBalance
		}
		return err
	}

	srcBefore := src.Balance
	if err := src.Debit(amount); err != nil {
		return err
	}
	if err := store.UpdateWallet(ctx, src); err != nil {
		return err
	}
	if err := store.CreateTransaction(ctx, &models.Transaction{
		WalletID:      src.ID,
		Type:          txType,
		Direction:     models.TransactionDebit,
		Amount:        amount,
		BalanceBefore: srcBefore,
		BalanceAfter:  src.Balance,
		ReferenceID:   referenceID,
		Memo:          memo,
	}); err != nil {
		return err
	}

	return credit(ctx, store, to, amount, txType, referenceID, memo)
}

// Deposit credits external funds to an account, creating its wallet on
// first use.
func Deposit(ctx context.Context,
	store LedgerStore,
	to uuid.UUID,
	amount uint64,
	referenceID uuid.UUID,
	memo string) error {
	if amount == 0 {
		return models.ErrInvalidAmount
	}
	return credit(ctx, store, to, amount, models.TransactionTypeDeposit, referenceID, memo)
}

func credit(ctx context.Context,
	store LedgerStore,
	to uuid.UUID,
	amount uint64,
	txType models.TransactionType,
	referenceID uuid.UUID,
	memo string) error {
	dst, err := store.GetWalletForUpdate(ctx, to)
	if err != nil {
		if !errors.Is(err, models.ErrRecordNotFound) {
			return err
		}
		dst = &models.Wallet{AccountID: to}
		if err := store.CreateWallet(ctx, dst); err != nil {
			return err
		}
	}

	dstBefore := dst.Balance
	if err := dst.Credit(amount); err != nil {
		return err
	}
	if err := store.UpdateWallet(ctx, dst); err != nil {
		return err
	}
	return store.CreateTransaction(ctx, &models.Transaction{
		WalletID:      dst.ID,
		Type:          txType,
		Direction:     models.TransactionCredit,
		Amount:        amount,
		BalanceBefore: dstBefore,
		BalanceAfter:  dst.Balance,
		ReferenceID:   referenceID,
		Memo:          memo,
	})
}
