package wagers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelu/tote/app/api"
	"github.com/kelu/tote/app/markets"
	"github.com/kelu/tote/internal/cache"
	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
)

// Dependencies represents the dependencies needed for the wagers module
type Dependencies struct {
	DB        *gorm.DB
	Config    *Config
	OddsCache cache.Store[markets.OddsResponse]
	Publisher events.Publisher
	Logger    logger.Logger
}

// Init initializes the wagers module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("invalid wagers configuration: " + err.Error())
	}

	repo := NewRepository(deps.DB)
	engine := NewEngine(config.Params)
	srvs := NewService(deps.DB, repo, config, engine, deps.OddsCache, deps.Publisher, deps.Logger)
	handler := NewHandler(srvs)

	authed := r.Group("", api.RequireAccount())
	authed.POST("/markets/:id/bets", handler.PlaceBet)
	authed.POST("/markets/:id/claims", handler.Claim)
	authed.GET("/markets/:id/positions/me", handler.GetMyPosition)
	authed.GET("/positions/me", handler.GetMyPositions)

	return srvs
}
