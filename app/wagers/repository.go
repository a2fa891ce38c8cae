package wagers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelu/tote/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new wager repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetMarketForUpdate returns a market with a row lock, serializing all
// bets, claims and resolution on it.
func (r *repository) GetMarketForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&market).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &market, nil
}

// UpdateMarket updates an existing market
func (r *repository) UpdateMarket(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Save(market).Error
}

// GetPosition returns one account's position in one market
func (r *repository) GetPosition(ctx context.Context, accountID, marketID uuid.UUID) (*models.Position, error) {
	return r.getPosition(ctx, r.db, accountID, marketID)
}

// GetPositionForUpdate returns a position with a row lock
func (r *repository) GetPositionForUpdate(ctx context.Context, accountID, marketID uuid.UUID) (*models.Position, error) {
	return r.getPosition(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), accountID, marketID)
}

func (r *repository) getPosition(ctx context.Context, db *gorm.DB, accountID, marketID uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := db.WithContext(ctx).
		Where("account_id = ? AND market_id = ?", accountID, marketID).
		First(&position).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &position, nil
}

// GetPositionsByAccount returns all positions of one account
func (r *repository) GetPositionsByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&positions).Error
	return positions, err
}

// CreatePosition creates a new position
func (r *repository) CreatePosition(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

// UpdatePosition updates an existing position
func (r *repository) UpdatePosition(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Save(position).Error
}

// GetWalletForUpdate returns a wallet by account ID with a row lock
func (r *repository) GetWalletForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// CreateWallet creates a new wallet
func (r *repository) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	return r.db.WithContext(ctx).Create(wallet).Error
}

// UpdateWallet updates an existing wallet
func (r *repository) UpdateWallet(ctx context.Context, wallet *models.Wallet) error {
	return r.db.WithContext(ctx).Save(wallet).Error
}

// CreateTransaction creates a new ledger entry
func (r *repository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}
