// Package events carries market activity notifications to interested
// consumers such as the websocket stream and external subscribers.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type identifies a kind of notification.
type Type string

const (
	TypeMarketOpened    Type = "market.opened"
	TypeBetPlaced       Type = "bet.placed"
	TypeLeaderChanged   Type = "market.leader_changed"
	TypeMarketResolved  Type = "market.resolved"
	TypeWinningsClaimed Type = "winnings.claimed"
	TypePauseToggled    Type = "market.pause_toggled"
	TypeVelocityLimited Type = "bet.velocity_limited"
)

// Event is a single notification. Payload carries type-specific fields and
// must be JSON-serializable.
type Event struct {
	ID       uuid.UUID      `json:"id"`
	Type     Type           `json:"type"`
	MarketID uuid.UUID      `json:"market_id"`
	At       int64          `json:"at"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// New builds an event stamped with a fresh ID and the current time.
func New(t Type, marketID uuid.UUID, payload map[string]any) Event {
	return Event{
		ID:       uuid.New(),
		Type:     t,
		MarketID: marketID,
		At:       time.Now().Unix(),
		Payload:  payload,
	}
}

// Publisher delivers events. Implementations must not block the caller on
// slow consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Multi fans one event out to several publishers. The first error is
// returned but every publisher is attempted.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Discard drops every event. Useful in tests and when streaming is disabled.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
