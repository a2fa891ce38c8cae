package markets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/kelu/tote/models"
	"github.com/kelu/tote/tests/suites"
)

type MarketRepositorySuite struct {
	suites.RepositoryTestSuite
	repo Repository
}

func TestMarketRepositorySuite(t *testing.T) {
	suite.Run(t, new(MarketRepositorySuite))
}

func (s *MarketRepositorySuite) SetupSuite() {
	s.AutoMigrate = true
	s.RepositoryTestSuite.SetupSuite()
	s.repo = NewRepository(s.DB)
}

func (s *MarketRepositorySuite) newMarket(creatorID uuid.UUID, sequence uint64) *models.Market {
	now := time.Now().Unix()
	return &models.Market{
		CreatorID: creatorID,
		Sequence:  sequence,
		Question:  "Will it rain tomorrow?",
		Outcomes:  models.OutcomeList{"Yes", "No"},
		StartTime: now,
		EndTime:   now + 7200,
		Pools:     models.PoolList{0, 0},
		Phase:     models.MarketPhaseBetting,
	}
}

func (s *MarketRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()
	market := s.newMarket(uuid.New(), 1)

	s.Require().NoError(s.repo.Create(ctx, market))
	s.Require().NotEqual(uuid.Nil, market.ID)

	got, err := s.repo.GetByID(ctx, market.ID)
	s.Require().NoError(err)
	s.Equal(market.Question, got.Question)
	s.Equal(models.OutcomeList{"Yes", "No"}, got.Outcomes)
	s.Equal(models.PoolList{0, 0}, got.Pools)
	s.Equal(models.MarketPhaseBetting, got.Phase)
}

func (s *MarketRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), uuid.New())
	s.ErrorIs(err, models.ErrRecordNotFound)
}

func (s *MarketRepositorySuite) TestNextSequence() {
	ctx := context.Background()
	creatorID := uuid.New()

	seq, err := s.repo.NextSequence(ctx, creatorID)
	s.Require().NoError(err)
	s.Equal(uint64(1), seq)

	s.Require().NoError(s.repo.Create(ctx, s.newMarket(creatorID, seq)))

	seq, err = s.repo.NextSequence(ctx, creatorID)
	s.Require().NoError(err)
	s.Equal(uint64(2), seq)

	// Sequences are per creator.
	seq, err = s.repo.NextSequence(ctx, uuid.New())
	s.Require().NoError(err)
	s.Equal(uint64(1), seq)
}

func (s *MarketRepositorySuite) TestUpdatePersistsLeaderAndPools() {
	ctx := context.Background()
	market := s.newMarket(uuid.New(), 1)
	s.Require().NoError(s.repo.Create(ctx, market))

	market.Pools = models.PoolList{0, 500}
	market.TotalPool = 500
	market.TotalFees = 5
	leader := int16(1)
	since := market.StartTime + 60
	market.LeadingOutcome = &leader
	market.LeadingSince = &since
	s.Require().NoError(s.repo.Update(ctx, market))

	got, err := s.repo.GetByID(ctx, market.ID)
	s.Require().NoError(err)
	s.Equal(models.PoolList{0, 500}, got.Pools)
	s.Equal(uint64(500), got.TotalPool)
	s.Require().NotNil(got.LeadingOutcome)
	s.Equal(int16(1), *got.LeadingOutcome)
	s.Require().NotNil(got.LeadingSince)
	s.Equal(since, *got.LeadingSince)
}

func (s *MarketRepositorySuite) TestGetAll_FiltersAndPaginates() {
	ctx := context.Background()
	creatorID := uuid.New()
	for i := uint64(1); i <= 3; i++ {
		s.Require().NoError(s.repo.Create(ctx, s.newMarket(creatorID, i)))
	}
	s.Require().NoError(s.repo.Create(ctx, s.newMarket(uuid.New(), 1)))

	results, total, err := s.repo.GetAll(ctx, &MarketFilters{CreatorID: &creatorID})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(results, 3)

	results, total, err = s.repo.GetAll(ctx, &MarketFilters{CreatorID: &creatorID, Page: 2, PerPage: 2})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(results, 1)
}

func (s *MarketRepositorySuite) TestWalletLifecycle() {
	ctx := context.Background()
	accountID := uuid.New()

	_, err := s.repo.GetWalletForUpdate(ctx, accountID)
	s.ErrorIs(err, models.ErrRecordNotFound)

	wallet := &models.Wallet{AccountID: accountID, Balance: 1000}
	s.Require().NoError(s.repo.CreateWallet(ctx, wallet))

	got, err := s.repo.GetWalletForUpdate(ctx, accountID)
	s.Require().NoError(err)
	s.Equal(uint64(1000), got.Balance)

	got.Balance = 400
	s.Require().NoError(s.repo.UpdateWallet(ctx, got))

	s.Require().NoError(s.repo.CreateTransaction(ctx, &models.Transaction{
		WalletID:      got.ID,
		Type:          models.TransactionTypeStake,
		Direction:     models.TransactionDebit,
		Amount:        600,
		BalanceBefore: 1000,
		BalanceAfter:  400,
		ReferenceID:   uuid.New(),
	}))
	s.Equal(int64(1), s.CountRecords("transactions"))
}
