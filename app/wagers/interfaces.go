package wagers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/models"
)

// Repository defines the interface for wager data access. It spans markets,
// positions and wallets so a bet or claim mutates all of them in one
// database transaction.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetMarketForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error)
	UpdateMarket(ctx context.Context, market *models.Market) error

	GetPosition(ctx context.Context, accountID, marketID uuid.UUID) (*models.Position, error)
	GetPositionForUpdate(ctx context.Context, accountID, marketID uuid.UUID) (*models.Position, error)
	GetPositionsByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Position, error)
	CreatePosition(ctx context.Context, position *models.Position) error
	UpdatePosition(ctx context.Context, position *models.Position) error

	GetWalletForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
}

// Service defines the interface for wager business logic
type Service interface {
	PlaceBet(ctx context.Context, accountID, marketID uuid.UUID, req *PlaceBetRequest) (*BetResponse, error)
	Claim(ctx context.Context, accountID, marketID uuid.UUID) (*ClaimResponse, error)
	GetMyPosition(ctx context.Context, accountID, marketID uuid.UUID) (*PositionResponse, error)
	GetMyPositions(ctx context.Context, accountID uuid.UUID) ([]PositionResponse, error)
}

// Engine applies the betting and payout rules to in-memory market state.
// It performs no I/O; callers persist the mutated models.
type Engine interface {
	ApplyBet(market *models.Market, outcomeIndex int, stake uint64, now int64) (*BetResult, error)
	Claim(market *models.Market, position *models.Position) (uint64, error)
}
