package wallet

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/models"
)

// Repository defines the data access contract for wallets and their ledger
type Repository interface {
	LedgerStore

	WithTx(tx *gorm.DB) Repository
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error)
	GetTransactionsByWallet(ctx context.Context, walletID uuid.UUID, filters *TransactionFilters) ([]models.Transaction, int64, error)
}

// Service defines the business logic contract for wallet operations
type Service interface {
	Deposit(ctx context.Context, accountID uuid.UUID, req *DepositRequest) (*WalletResponse, error)
	GetMyWallet(ctx context.Context, accountID uuid.UUID) (*WalletResponse, error)
	GetMyTransactions(ctx context.Context, accountID uuid.UUID, filters *TransactionFilters) ([]TransactionResponse, int64, error)
}
