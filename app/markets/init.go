package markets

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelu/tote/app/api"
	"github.com/kelu/tote/internal/cache"
	"github.com/kelu/tote/internal/events"
	"github.com/kelu/tote/internal/logger"
	"github.com/kelu/tote/internal/sanitizer"
)

// Dependencies represents the dependencies needed for the markets module
type Dependencies struct {
	DB        *gorm.DB
	Config    *Config
	Cleaner   *sanitizer.TextCleaner
	OddsCache cache.Store[OddsResponse]
	Publisher events.Publisher
	Logger    logger.Logger
}

// Init initializes the markets module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("invalid markets configuration: " + err.Error())
	}

	repo := NewRepository(deps.DB)
	scores := NewScoreEngine(config.Params)
	srvs := NewService(deps.DB, repo, config, scores,
		deps.Cleaner, deps.OddsCache, deps.Publisher, deps.Logger)
	handler := NewHandler(srvs)

	marketsGroup := r.Group("/markets")
	marketsGroup.GET("", handler.GetMarkets)
	marketsGroup.GET("/:id", handler.GetMarketByID)
	marketsGroup.GET("/:id/odds", handler.GetOdds)

	authed := marketsGroup.Group("", api.RequireAccount())
	authed.POST("", handler.CreateMarket)
	authed.POST("/:id/resolve", handler.ResolveMarket)
	authed.POST("/:id/pause", handler.SetPaused)

	return srvs
}
