package markets

import (
	"github.com/kelu/tote/internal/policy"
	"github.com/kelu/tote/models"
)

// scoreEngine implements winner selection from the two weighted components:
// how long an outcome held the lead and how much money it attracted.
type scoreEngine struct {
	params policy.Params
}

// NewScoreEngine creates a winner-selection engine.
func NewScoreEngine(params policy.Params) ScoreEngine {
	return &scoreEngine{params: params}
}

// Winner scores every outcome that attracted money and returns the index
// with the highest combined score. Only the outcome cached as leader at
// resolution earns the leadership component; its credited duration runs
// from the last leadership change to now. Ties keep the lowest index.
func (e *scoreEngine) Winner(market *models.Market, now int64) (int16, error) {
	if market.TotalPool == 0 {
		return 0, models.ErrNoBetsPlaced
	}

	totalDuration := market.Duration()

	best := int16(-1)
	var bestScore uint64
	for i, pool := range market.Pools {
		if pool == 0 {
			continue
		}

		score := e.params.MoneyScore(pool, market.TotalPool)
		if market.LeadingOutcome != nil && *market.LeadingOutcome == int16(i) {
			since := market.StartTime
			if market.LeadingSince != nil {
				since = *market.LeadingSince
			}
			score += e.params.LeadershipScore(now-since, totalDuration)
		}

		if best < 0 || score > bestScore {
			best = int16(i)
			bestScore = score
		}
	}

	if best < 0 {
		return 0, models.ErrNoBetsPlaced
	}
	return best, nil
}
