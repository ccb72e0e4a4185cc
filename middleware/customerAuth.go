package middleware

import (
	"strings"

	"lilac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerAuthMiddleware resolves the authenticated customer for checkout
// routes. A valid bearer token sets the customer ID on the gin context and on
// the request context; a missing or invalid token leaves the request as a
// guest. It never aborts: guest checkout stays open.
func CustomerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.Next()
			return
		}

		customerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || customerID == "" {
			utils.GetLogger().Debug("Ignoring invalid checkout token", zap.Error(err))
			c.Next()
			return
		}

		c.Set("customerID", customerID)
		c.Request = c.Request.WithContext(utils.WithCustomerID(c.Request.Context(), customerID))
		c.Next()
	}
}
