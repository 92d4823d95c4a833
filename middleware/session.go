package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petal-pink/models"
	"petal-pink/utils"
)

const (
	SessionHeader = "X-Cart-Session"
	SessionIDKey  = "cart_session_id"
)

// CartSessionMiddleware requires a signed cart session token, sent as
// "Bearer <token>" in X-Cart-Session, and stores its session id on the context.
func CartSessionMiddleware(tokens *utils.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(SessionHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Cart session header required",
			})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid cart session header format",
			})
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired cart session",
				Error:   err.Error(),
			})
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
