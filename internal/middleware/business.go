package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"balanza/internal/services"
)

// BusinessMiddleware resolves the active business from the X-Business-Id
// header and verifies the authenticated user is a member. Ledger operations
// are always scoped to exactly one business; the id and role are set in the
// context so handlers pass them down explicitly.
func BusinessMiddleware(businessService services.BusinessServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.GetHeader("X-Business-Id")
		if businessID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Business-Id header is required"})
			c.Abort()
			return
		}

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		member, err := businessService.GetMembership(businessID, userID.(string))
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not a member of this business"})
			c.Abort()
			return
		}

		c.Set("businessID", businessID)
		c.Set("businessRole", member.Role)
		c.Next()
	}
}
