package markets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/models"
)

// Repository defines the interface for market data access. Wallet and
// ledger operations live here too, so a market mutation and the fund
// movement it implies can share one database transaction.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error)
	GetAll(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error)
	Create(ctx context.Context, market *models.Market) error
	Update(ctx context.Context, market *models.Market) error
	NextSequence(ctx context.Context, creatorID uuid.UUID) (uint64, error)

	GetWalletForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error)
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
}

// Service defines the interface for market business logic
type Service interface {
	CreateMarket(ctx context.Context, creatorID uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error)
	GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error)
	GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error)
	GetOdds(ctx context.Context, id uuid.UUID) (*OddsResponse, error)
	ResolveMarket(ctx context.Context, id, accountID uuid.UUID) (*MarketResponse, error)
	SetPaused(ctx context.Context, id, accountID uuid.UUID, paused bool) (*MarketResponse, error)
}

// ScoreEngine selects the winning outcome of an ended market.
type ScoreEngine interface {
	Winner(market *models.Market, now int64) (int16, error)
}
