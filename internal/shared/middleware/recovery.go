package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"items-backend/internal/shared/response"
	"items-backend/pkg/logger"
)

// Recovery turns a panic into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				logger.Request(c).Error().
					Interface("panic", p).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
