package stream

import (
	"github.com/gin-gonic/gin"

	"github.com/kelu/tote/internal/logger"
)

// Dependencies represents the dependencies needed for the stream module
type Dependencies struct {
	Bus    Subscriber
	Logger logger.Logger
}

// Init initializes the stream module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Bus, deps.Logger)
	r.GET("/streams/events", handler.Events)
}
