package models

import (
	"database/sql/driver"
	"encoding/json"
	"math/bits"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketPhase represents the lifecycle phase of a market.
type MarketPhase string

const (
	MarketPhaseBetting   MarketPhase = "betting"
	MarketPhaseResolving MarketPhase = "resolving"
	MarketPhaseResolved  MarketPhase = "resolved"
	MarketPhaseCancelled MarketPhase = "cancelled"
)

// OutcomeList is the ordered list of outcome labels. An outcome's identity
// is its position in this list and never changes after creation.
type OutcomeList []string

// Value implements driver.Valuer for JSONB storage
func (o OutcomeList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan implements sql.Scanner
func (o *OutcomeList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	}
	return nil
}

// PoolList holds one running total per outcome, in smallest funding units.
type PoolList []uint64

// Value implements driver.Valuer for JSONB storage
func (p PoolList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *PoolList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return nil
}

// Market represents a pari-mutuel betting market. All monetary fields are
// non-negative integers in the smallest funding unit; all timestamps are
// unix seconds supplied by the caller, never read from the wall clock.
type Market struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_markets_creator_seq" json:"creator_id"`
	Sequence  uint64    `gorm:"not null;uniqueIndex:idx_markets_creator_seq" json:"sequence"`

	Question string      `gorm:"type:varchar(280);not null" json:"question"`
	Outcomes OutcomeList `gorm:"type:jsonb;not null" json:"outcomes"`

	StartTime      int64  `gorm:"not null" json:"start_time"`
	EndTime        int64  `gorm:"not null;index" json:"end_time"`
	ResolutionTime *int64 `json:"resolution_time,omitempty"`

	Pools     PoolList `gorm:"type:jsonb;not null" json:"pools"`
	TotalPool uint64   `gorm:"not null;default:0" json:"total_pool"`
	TotalFees uint64   `gorm:"not null;default:0" json:"total_fees"`

	// Leadership cache. Recomputed on every bet via UpdateLeader; never set
	// independently of that rule.
	LeadingOutcome *int16 `gorm:"type:smallint" json:"leading_outcome,omitempty"`
	LeadingSince   *int64 `json:"leading_since,omitempty"`

	Phase  MarketPhase `gorm:"type:varchar(20);not null;default:'betting';index" json:"phase"`
	Winner *int16      `gorm:"type:smallint" json:"winner,omitempty"`
	Paused bool        `gorm:"not null;default:false" json:"paused"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Positions []Position `gorm:"foreignKey:MarketID" json:"-"`
}

// TableName specifies the table name for Market model
func (*Market) TableName() string {
	return "markets"
}

// BeforeCreate sets up the model before creation
func (m *Market) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Duration returns the total betting window in seconds.
func (m *Market) Duration() int64 {
	return m.EndTime - m.StartTime
}

// IsActive reports whether the market accepts state changes from bettors:
// phase is Betting and the administrative pause flag is clear. The end-time
// cutoff is checked separately so callers can report a distinct error.
func (m *Market) IsActive() bool {
	return m.Phase == MarketPhaseBetting && !m.Paused
}

// HasEnded reports whether the betting window has closed at the given time.
func (m *Market) HasEnded(now int64) bool {
	return now >= m.EndTime
}

// IsResolved reports whether the market has been resolved.
func (m *Market) IsResolved() bool {
	return m.Phase == MarketPhaseResolved && m.Winner != nil
}

// ValidOutcome reports whether the index refers to an existing outcome.
func (m *Market) ValidOutcome(index int) bool {
	return index >= 0 && index < len(m.Outcomes)
}

// AddToPool adds a net contribution to one outcome pool and the total pool,
// and a commission to the fee total, using checked addition. Either all
// three fields are updated or none is.
func (m *Market) AddToPool(index int, net, commission uint64) error {
	if !m.ValidOutcome(index) {
		return ErrInvalidOutcomeIndex
	}

	pool, carry := bits.Add64(m.Pools[index], net, 0)
	total, carry2 := bits.Add64(m.TotalPool, net, 0)
	fees, carry3 := bits.Add64(m.TotalFees, commission, 0)
	if carry != 0 || carry2 != 0 || carry3 != 0 {
		return ErrMathOverflow
	}

	m.Pools[index] = pool
	m.TotalPool = total
	m.TotalFees = fees
	return nil
}

// UpdateLeader recomputes the leading outcome by scanning all pools for the
// current maximum. Ties keep the lowest index. If the leader changed from
// the cached value, the cache is updated and leading_since is stamped with
// now; otherwise leading_since is left untouched. Returns whether the
// leader changed.
func (m *Market) UpdateLeader(now int64) bool {
	var maxPool uint64
	var leader int16

	for i, pool := range m.Pools {
		if pool > maxPool {
			maxPool = pool
			leader = int16(i)
		}
	}

	if m.LeadingOutcome != nil && *m.LeadingOutcome == leader {
		return false
	}

	m.LeadingOutcome = &leader
	m.LeadingSince = &now
	return true
}

// Resolve transitions the market to Resolved with the given winner and
// stamps the resolution time. The transition is irreversible; callers must
// have verified the resolution preconditions.
func (m *Market) Resolve(winner int16, now int64) error {
	if m.Phase != MarketPhaseBetting {
		return ErrMarketAlreadyResolved
	}

	m.Phase = MarketPhaseResolved
	m.Winner = &winner
	m.ResolutionTime = &now
	return nil
}

// CheckInvariants verifies the pool bookkeeping identities. Services call
// it before persisting a mutated market.
func (m *Market) CheckInvariants() error {
	if len(m.Pools) != len(m.Outcomes) {
		return ErrPoolMismatch
	}

	var sum uint64
	for _, pool := range m.Pools {
		next, carry := bits.Add64(sum, pool, 0)
		if carry != 0 {
			return ErrMathOverflow
		}
		sum = next
	}
	if sum != m.TotalPool {
		return ErrPoolMismatch
	}

	if (m.Winner != nil) != (m.Phase == MarketPhaseResolved) {
		return ErrInvalidPhase
	}
	if (m.LeadingOutcome == nil) != (m.LeadingSince == nil) {
		return ErrInvalidPhase
	}
	return nil
}

// Validate performs validation on the market model
func (m *Market) Validate() error {
	if m.CreatorID == uuid.Nil {
		return ErrInvalidAccountID
	}
	if m.Question == "" {
		return ErrInvalidQuestion
	}
	if len(m.Outcomes) < 2 {
		return ErrInvalidOutcomes
	}
	if m.EndTime <= m.StartTime {
		return ErrEndTimeInPast
	}
	return nil
}
