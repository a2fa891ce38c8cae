package wagers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kelu/tote/app/markets"
	"github.com/kelu/tote/app/wallet"
	"github.com/kelu/tote/internal/cache"
	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/models"
)

// service implements the Service interface
type service struct {
	db        *gorm.DB
	repo      Repository
	config    *Config
	engine    Engine
	oddsCache cache.Store[markets.OddsResponse]
	publisher events.Publisher
	log       logger.Logger

	// now supplies the clock; tests replace it.
	now func() int64
}

// NewService creates a new wager service
func NewService(db *gorm.DB,
	repo Repository,
	config *Config,
	engine Engine,
	oddsCache cache.Store[markets.OddsResponse],
	publisher events.Publisher,
	log logger.Logger) Service {
	return &service{
		db:        db,
		repo:      repo,
		config:    config,
		engine:    engine,
		oddsCache: oddsCache,
		publisher: publisher,
		log:       log,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// PlaceBet stakes on one outcome of an active market. The pool update, the
// fund movements and the position upsert commit in a single transaction;
// a rejected bet changes nothing.
func (s *service) PlaceBet(ctx context.Context, accountID, marketID uuid.UUID, req *PlaceBetRequest) (*BetResponse, error) {
	if req.OutcomeIndex == nil {
		return nil, models.ErrInvalidOutcomeIndex
	}
	outcomeIndex := *req.OutcomeIndex
	stake := req.Amount
	now := s.now()

	var resp *BetResponse
	var result *BetResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		market, err := repoTx.GetMarketForUpdate(ctx, marketID)
		if err != nil {
			return err
		}

		result, err = s.engine.ApplyBet(market, outcomeIndex, stake, now)
		if err != nil {
			return err
		}

		// Net stake into the market escrow, commission to the fee sink.
		err = wallet.Transfer(ctx, repoTx, accountID, marketID,
			result.Net, models.TransactionTypeStake, marketID, "stake")
		if err != nil {
			return err
		}
		if result.Commission > 0 {
			err = wallet.Transfer(ctx, repoTx, accountID, s.config.FeeAccountID,
				result.Commission, models.TransactionTypeCommission, marketID, "bet commission")
			if err != nil {
				return err
			}
		}

		position, err := s.upsertPosition(ctx, repoTx, accountID, marketID, int16(outcomeIndex), stake, now)
		if err != nil {
			return err
		}

		if err := market.CheckInvariants(); err != nil {
			return err
		}
		if err := repoTx.UpdateMarket(ctx, market); err != nil {
			return err
		}

		resp = &BetResponse{
			MarketID:       marketID,
			OutcomeIndex:   outcomeIndex,
			Amount:         stake,
			AmountDisplay:  markets.DisplayAmount(stake, s.config.Params.UnitExponent),
			Commission:     result.Commission,
			Net:            result.Net,
			OutcomePool:    result.NewOutcomePool,
			TotalPool:      market.TotalPool,
			Odds:           result.Odds,
			LeaderChanged:  result.LeaderChanged,
			PositionAmount: position.Amount,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrVelocityLimitExceeded) && result != nil {
			s.publish(ctx, events.New(events.TypeVelocityLimited, marketID, map[string]any{
				"account_id": accountID,
				"amount":     stake,
				"limit":      result.VelocityLimit,
			}))
		}
		return nil, err
	}

	// The pools moved, so any cached odds snapshot is stale.
	if err := s.oddsCache.Delete(ctx, markets.OddsCacheKey(marketID)); err != nil {
		s.log.Error(err, logger.Fields{"op": "invalidate odds cache", "market_id": marketID})
	}

	s.log.Info("bet placed", logger.Fields{
		"market_id":  marketID,
		"account_id": accountID,
		"amount":     stake,
	})
	s.publish(ctx, events.New(events.TypeBetPlaced, marketID, map[string]any{
		"account_id":    accountID,
		"outcome_index": outcomeIndex,
		"amount":        stake,
		"odds":          resp.Odds,
	}))
	if resp.LeaderChanged {
		s.publish(ctx, events.New(events.TypeLeaderChanged, marketID, map[string]any{
			"leading_outcome": outcomeIndex,
		}))
	}

	return resp, nil
}

func (s *service) upsertPosition(ctx context.Context,
	repo Repository,
	accountID, marketID uuid.UUID,
	outcomeIndex int16,
	stake uint64,
	now int64) (*models.Position, error) {
	position, err := repo.GetPositionForUpdate(ctx, accountID, marketID)
	if err != nil {
		if !errors.Is(err, models.ErrRecordNotFound) {
			return nil, err
		}
		position = &models.Position{
			AccountID:    accountID,
			MarketID:     marketID,
			OutcomeIndex: outcomeIndex,
			Amount:       stake,
			PlacedAt:     now,
		}
		return position, repo.CreatePosition(ctx, position)
	}

	if err := position.Extend(outcomeIndex, stake); err != nil {
		return nil, err
	}
	return position, repo.UpdatePosition(ctx, position)
}

// Claim pays out a winning position from the market escrow and marks it
// claimed, all in one transaction.
func (s *service) Claim(ctx context.Context, accountID, marketID uuid.UUID) (*ClaimResponse, error) {
	var resp *ClaimResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		market, err := repoTx.GetMarketForUpdate(ctx, marketID)
		if err != nil {
			return err
		}
		position, err := repoTx.GetPositionForUpdate(ctx, accountID, marketID)
		if err != nil {
			return err
		}

		payout, err := s.engine.Claim(market, position)
		if err != nil {
			return err
		}

		err = wallet.Transfer(ctx, repoTx, marketID, accountID,
			payout, models.TransactionTypePayout, position.ID, "winnings")
		if err != nil {
			return err
		}

		if err := position.MarkClaimed(); err != nil {
			return err
		}
		if err := repoTx.UpdatePosition(ctx, position); err != nil {
			return err
		}

		resp = &ClaimResponse{
			MarketID:      marketID,
			OutcomeIndex:  position.OutcomeIndex,
			Stake:         position.Amount,
			Payout:        payout,
			PayoutDisplay: markets.DisplayAmount(payout, s.config.Params.UnitExponent),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("winnings claimed", logger.Fields{
		"market_id":  marketID,
		"account_id": accountID,
		"payout":     resp.Payout,
	})
	s.publish(ctx, events.New(events.TypeWinningsClaimed, marketID, map[string]any{
		"account_id": accountID,
		"payout":     resp.Payout,
	}))

	return resp, nil
}

// GetMyPosition returns the caller's position in one market.
func (s *service) GetMyPosition(ctx context.Context, accountID, marketID uuid.UUID) (*PositionResponse, error) {
	position, err := s.repo.GetPosition(ctx, accountID, marketID)
	if err != nil {
		return nil, err
	}
	resp := ToPositionResponse(position, s.config.Params.UnitExponent)
	return &resp, nil
}

// GetMyPositions returns all of the caller's positions.
func (s *service) GetMyPositions(ctx context.Context, accountID uuid.UUID) ([]PositionResponse, error) {
	positions, err := s.repo.GetPositionsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]PositionResponse, len(positions))
	for i := range positions {
		out[i] = ToPositionResponse(&positions[i], s.config.Params.UnitExponent)
	}
	return out, nil
}

func (s *service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Error(err, logger.Fields{"op": "publish event", "type": e.Type})
	}
}
