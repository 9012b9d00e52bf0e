package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gridpulse/internal/domain/dto"
	"github.com/guttosm/gridpulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from any panic raised
// further down the chain and answers with a JSON 500.
//
// Behavior:
//   - Logs the recovered value, the request ID and the stack trace.
//   - Responds with {"error": "Internal server error", "details": "<panic value>"}.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r)))
			}
		}()

		c.Next()
	}
}
