package markets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/app/wallet"
	"github.com/kelu/tote/internal/cache"
	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/internal/sanitizer"
	"github.com/kelu/tote/models"
)

// service implements the Service interface
type service struct {
	db        *gorm.DB // main connection for starting transactions
	repo      Repository
	config    *Config
	scores    ScoreEngine
	cleaner   *sanitizer.TextCleaner
	oddsCache cache.Store[OddsResponse]
	publisher events.Publisher
	log       logger.Logger

	// now supplies the clock; tests replace it.
	now func() int64
}

// NewService creates a new market service
func NewService(db *gorm.DB,
	repo Repository,
	config *Config,
	scores ScoreEngine,
	cleaner *sanitizer.TextCleaner,
	oddsCache cache.Store[OddsResponse],
	publisher events.Publisher,
	log logger.Logger) Service {
	return &service{
		db:        db,
		repo:      repo,
		config:    config,
		scores:    scores,
		cleaner:   cleaner,
		oddsCache: oddsCache,
		publisher: publisher,
		log:       log,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// CreateMarket opens a new market. The creation fee moves from the creator
// to the platform fee account in the same transaction that persists the
// market and its escrow wallet.
func (s *service) CreateMarket(ctx context.Context, creatorID uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error) {
	if creatorID == uuid.Nil {
		return nil, models.ErrInvalidAccountID
	}

	req.Question = s.cleaner.Clean(req.Question)
	req.Outcomes = s.cleaner.CleanAll(req.Outcomes)

	now := s.now()
	if err := req.Validate(s.config.Params, now); err != nil {
		return nil, err
	}

	market := &models.Market{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Question:  req.Question,
		Outcomes:  req.Outcomes,
		StartTime: now,
		EndTime:   req.EndTime.Unix(),
		Pools:     make(models.PoolList, len(req.Outcomes)),
		Phase:     models.MarketPhaseBetting,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		seq, err := repoTx.NextSequence(ctx, creatorID)
		if err != nil {
			return err
		}
		market.Sequence = seq

		if fee := s.config.Params.CreateMarketFee; fee > 0 {
			err = wallet.Transfer(ctx, repoTx, creatorID, s.config.FeeAccountID,
				fee, models.TransactionTypeMarketFee, market.ID, "market creation fee")
			if err != nil {
				return err
			}
		}

		if err := repoTx.Create(ctx, market); err != nil {
			return err
		}

		// Escrow wallet holding this market's pool, keyed by the market id.
		return repoTx.CreateWallet(ctx, &models.Wallet{AccountID: market.ID})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("market opened", logger.Fields{"market_id": market.ID, "creator_id": creatorID})
	s.publish(ctx, events.New(events.TypeMarketOpened, market.ID, map[string]any{
		"question": market.Question,
		"outcomes": []string(market.Outcomes),
		"end_time": market.EndTime,
	}))

	resp := ToMarketResponse(market, s.config.Params.UnitExponent)
	return &resp, nil
}

// GetMarketByID returns one market.
func (s *service) GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMarketResponse(market, s.config.Params.UnitExponent)
	return &resp, nil
}

// GetMarkets returns a filtered, paginated market list.
func (s *service) GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error) {
	marketsFound, total, err := s.repo.GetAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp := &MarketListResponse{
		Markets: make([]MarketResponse, len(marketsFound)),
		Total:   total,
		Page:    1,
		PerPage: 20,
	}
	if filters != nil {
		if filters.Page > 0 {
			resp.Page = filters.Page
		}
		if filters.PerPage > 0 && filters.PerPage <= 100 {
			resp.PerPage = filters.PerPage
		}
	}
	for i := range marketsFound {
		resp.Markets[i] = ToMarketResponse(&marketsFound[i], s.config.Params.UnitExponent)
	}
	return resp, nil
}

// GetOdds returns the normalized pool shares, served from a short-lived
// cache so hot markets do not hammer the database.
func (s *service) GetOdds(ctx context.Context, id uuid.UUID) (*OddsResponse, error) {
	key := OddsCacheKey(id)
	if cached, err := s.oddsCache.Get(ctx, key); err == nil {
		return &cached, nil
	}

	market, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := OddsResponse{
		MarketID:  market.ID,
		Odds:      policy.OddsSnapshot(market.Pools, market.TotalPool),
		Pools:     market.Pools,
		TotalPool: market.TotalPool,
	}
	if err := s.oddsCache.Set(ctx, key, resp, s.config.OddsCacheTTL); err != nil {
		s.log.Error(err, logger.Fields{"op": "cache odds snapshot", "market_id": id})
	}
	return &resp, nil
}

// ResolveMarket settles an ended market: the winning outcome is computed
// from the leadership and money scores and the market moves to Resolved.
// Only the creator may trigger resolution.
func (s *service) ResolveMarket(ctx context.Context, id, accountID uuid.UUID) (*MarketResponse, error) {
	var market *models.Market

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		m, err := repoTx.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if m.Phase != models.MarketPhaseBetting {
			return models.ErrMarketAlreadyResolved
		}
		if m.CreatorID != accountID {
			return models.ErrUnauthorized
		}

		now := s.now()
		if !m.HasEnded(now) {
			return models.ErrMarketNotEnded
		}
		if m.TotalPool == 0 {
			return models.ErrNoBetsPlaced
		}

		winner, err := s.scores.Winner(m, now)
		if err != nil {
			return err
		}
		if err := m.Resolve(winner, now); err != nil {
			return err
		}
		if err := m.CheckInvariants(); err != nil {
			return err
		}
		if err := repoTx.Update(ctx, m); err != nil {
			return err
		}

		market = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.oddsCache.Delete(ctx, OddsCacheKey(id)); err != nil {
		s.log.Error(err, logger.Fields{"op": "invalidate odds cache", "market_id": id})
	}

	s.log.Info("market resolved", logger.Fields{"market_id": id, "winner": *market.Winner})
	s.publish(ctx, events.New(events.TypeMarketResolved, id, map[string]any{
		"winner":     *market.Winner,
		"total_pool": market.TotalPool,
	}))

	resp := ToMarketResponse(market, s.config.Params.UnitExponent)
	return &resp, nil
}

// SetPaused toggles the administrative pause flag. Pausing stops new bets
// without touching pools or the leadership clock.
func (s *service) SetPaused(ctx context.Context, id, accountID uuid.UUID, paused bool) (*MarketResponse, error) {
	var market *models.Market

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		m, err := repoTx.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if m.Phase != models.MarketPhaseBetting {
			return models.ErrMarketAlreadyResolved
		}
		if m.CreatorID != accountID {
			return models.ErrUnauthorized
		}

		m.Paused = paused
		if err := repoTx.Update(ctx, m); err != nil {
			return err
		}

		market = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypePauseToggled, id, map[string]any{
		"paused": market.Paused,
	}))

	resp := ToMarketResponse(market, s.config.Params.UnitExponent)
	return &resp, nil
}

func (s *service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Error(err, logger.Fields{"op": "publish event", "type": e.Type})
	}
}

// OddsCacheKey is the cache key for a market's odds snapshot. The wagers
// module deletes it when a bet moves the pools.
func OddsCacheKey(id uuid.UUID) string {
	return "odds:" + id.String()
}
