package models

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPosition() *Position {
	return &Position{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		MarketID:     uuid.New(),
		OutcomeIndex: 0,
		Amount:       10_000_000,
		PlacedAt:     100,
	}
}

func TestPosition_Extend(t *testing.T) {
	t.Run("same outcome accumulates", func(t *testing.T) {
		p := newTestPosition()
		require.NoError(t, p.Extend(0, 5_000_000))
		assert.Equal(t, uint64(15_000_000), p.Amount)
	})

	t.Run("different outcome rejected", func(t *testing.T) {
		p := newTestPosition()
		err := p.Extend(1, 5_000_000)
		assert.ErrorIs(t, err, ErrOutcomeMismatch)
		assert.Equal(t, uint64(10_000_000), p.Amount)
	})

	t.Run("overflow rejected", func(t *testing.T) {
		p := newTestPosition()
		p.Amount = math.MaxUint64
		err := p.Extend(0, 1)
		assert.ErrorIs(t, err, ErrMathOverflow)
		assert.Equal(t, uint64(math.MaxUint64), p.Amount)
	})
}

func TestPosition_MarkClaimed(t *testing.T) {
	p := newTestPosition()
	require.NoError(t, p.MarkClaimed())
	assert.True(t, p.Claimed)

	assert.ErrorIs(t, p.MarkClaimed(), ErrAlreadyClaimed)
}

func TestPosition_Validate(t *testing.T) {
	assert.NoError(t, newTestPosition().Validate())

	t.Run("missing account", func(t *testing.T) {
		p := newTestPosition()
		p.AccountID = uuid.Nil
		assert.ErrorIs(t, p.Validate(), ErrInvalidAccountID)
	})

	t.Run("missing market", func(t *testing.T) {
		p := newTestPosition()
		p.MarketID = uuid.Nil
		assert.ErrorIs(t, p.Validate(), ErrInvalidMarketID)
	})

	t.Run("zero amount", func(t *testing.T) {
		p := newTestPosition()
		p.Amount = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidAmount)
	})
}
