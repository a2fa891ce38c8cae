package markets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelu/tote/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new market repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetByID returns a market by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
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

// GetByIDForUpdate returns a market by ID with a row lock, serializing
// concurrent bets and resolution on the same market.
func (r *repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error) {
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

// GetAll returns markets with filters and pagination
func (r *repository) GetAll(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error) {
	var markets []models.Market
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Market{})
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applySorting(query, filters)
	query = r.applyPagination(query, filters)

	err := query.Find(&markets).Error
	return markets, total, err
}

// Create creates a new market
func (r *repository) Create(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

// Update updates an existing market
func (r *repository) Update(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Save(market).Error
}

// NextSequence returns the next per-creator market sequence number. Must
// run inside the creation transaction; the unique index on
// (creator_id, sequence) catches races.
func (r *repository) NextSequence(ctx context.Context, creatorID uuid.UUID) (uint64, error) {
	var next uint64
	err := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Select("COALESCE(MAX(sequence), 0) + 1").
		Where("creator_id = ?", creatorID).
		Scan(&next).Error
	return next, err
}

// GetWalletForUpdate returns a wallet by account ID with a row lock.
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

// applyFilters applies filter criteria to the query
func (r *repository) applyFilters(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Phase != "" {
		query = query.Where("phase = ?", filters.Phase)
	}
	if filters.CreatorID != nil {
		query = query.Where("creator_id = ?", *filters.CreatorID)
	}
	return query
}

// applySorting applies sorting to the query
func (r *repository) applySorting(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	sortBy := "created_at"
	sortOrder := "desc"
	if filters != nil {
		// Validate sort fields to prevent SQL injection
		validSortFields := map[string]bool{
			"created_at": true,
			"end_time":   true,
			"total_pool": true,
		}
		if validSortFields[filters.SortBy] {
			sortBy = filters.SortBy
		}
		if filters.SortOrder == "asc" || filters.SortOrder == "desc" {
			sortOrder = filters.SortOrder
		}
	}
	return query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))
}

// applyPagination applies pagination to the query
func (r *repository) applyPagination(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	page := 1
	perPage := 20
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PerPage > 0 && filters.PerPage <= 100 {
			perPage = filters.PerPage
		}
	}
	return query.Offset((page - 1) * perPage).Limit(perPage)
}
