package wallet

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelu/tote/app/api"
	"github.com/kelu/tote/internal/logger"
)

// Dependencies represents the dependencies needed for the wallet module
type Dependencies struct {
	DB     *gorm.DB
	Config *Config
	Logger logger.Logger
}

// Init initializes the wallet module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("invalid wallet configuration: " + err.Error())
	}

	repo := NewRepository(deps.DB)
	srvs := NewService(deps.DB, repo, config, deps.Logger)
	handler := NewHandler(srvs)

	walletsGroup := r.Group("/wallets", api.RequireAccount())
	walletsGroup.POST("/deposits", handler.Deposit)
	walletsGroup.GET("/me", handler.GetMyWallet)
	walletsGroup.GET("/me/transactions", handler.GetMyTransactions)

	return srvs
}
