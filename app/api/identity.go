package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderAccountID names the header carrying the caller's account identity.
// Authentication happens upstream of this service; the gateway forwards the
// verified account id here.
const HeaderAccountID = "X-Account-ID"

const contextAccountKey = "account_id"

// RequireAccount rejects requests without a well-formed account id header
// and stores the parsed id in the request context.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderAccountID)
		if raw == "" {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}
		c.Set(contextAccountKey, id)
		c.Next()
	}
}

// AccountID returns the caller's account id stored by RequireAccount.
func AccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(contextAccountKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
