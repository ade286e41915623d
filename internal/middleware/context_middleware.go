package middleware

import (
	"sicservitium/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request id
// to the standard context, so services and repos can pick it up through
// contextutil without knowing about gin. It expects RequestID to have run
// earlier in the chain; without it the logger simply carries no id.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		reqLogger := logger
		if rid := contextutil.GetRequestID(ctx); rid != "" {
			reqLogger = logger.With(zap.String("request_id", rid))
		}

		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
