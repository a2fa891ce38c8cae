package wallet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/models"
)

type service struct {
	db     *gorm.DB
	repo   Repository
	config *Config
	log    logger.Logger
}

// NewService creates a new wallet service
func NewService(db *gorm.DB, repo Repository, config *Config, log logger.Logger) Service {
	return &service{
		db:     db,
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Deposit credits external funds to the caller's wallet, creating it on
// first use, and writes the credit to the ledger in the same transaction.
func (s *service) Deposit(ctx context.Context, accountID uuid.UUID, req *DepositRequest) (*WalletResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		return Deposit(ctx, repoTx, accountID, req.Amount, uuid.New(), req.Memo)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("deposit credited", logger.Fields{
		"account_id": accountID,
		"amount":     req.Amount,
	})

	wallet, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet, s.config.Params.UnitExponent), nil
}

// GetMyWallet returns the caller's wallet
func (s *service) GetMyWallet(ctx context.Context, accountID uuid.UUID) (*WalletResponse, error) {
	wallet, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet, s.config.Params.UnitExponent), nil
}

// GetMyTransactions returns the caller's ledger entries, newest first
func (s *service) GetMyTransactions(ctx context.Context, accountID uuid.UUID, filters *TransactionFilters) ([]TransactionResponse, int64, error) {
	wallet, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return []TransactionResponse{}, 0, nil
		}
		return nil, 0, err
	}

	transactions, total, err := s.repo.GetTransactionsByWallet(ctx, wallet.ID, filters)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i], s.config.Params.UnitExponent)
	}
	return responses, total, nil
}
